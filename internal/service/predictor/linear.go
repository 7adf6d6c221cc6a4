package predictor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

var _ Predictor = (*Linear)(nil)

// Linear 一元线性回归模型 y = coef*x + intercept
type Linear struct {
	coef      decimal.Decimal
	intercept decimal.Decimal
}

func NewLinear(coef, intercept decimal.Decimal) *Linear {
	return &Linear{
		coef:      coef,
		intercept: intercept,
	}
}

func (l *Linear) Predict(influenceChange decimal.Decimal) decimal.Decimal {
	return l.coef.Mul(influenceChange).Add(l.intercept)
}

type modelFile struct {
	Coef      float64 `json:"coef"`
	Intercept float64 `json:"intercept"`
}

// LoadFile 从json文件加载拟合好的模型参数
func LoadFile(path string) (*Linear, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}
	var m modelFile
	if err = json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model file %s: %w", path, err)
	}
	return NewLinear(decimal.NewFromFloat(m.Coef), decimal.NewFromFloat(m.Intercept)), nil
}
