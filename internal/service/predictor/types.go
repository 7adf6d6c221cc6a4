package predictor

import "github.com/shopspring/decimal"

// Predictor 给定影响币种的涨跌幅(%), 预测目标币种的联动涨跌幅(%)
// 模型在别处拟合完成, 这里只做推理
type Predictor interface {
	Predict(influenceChange decimal.Decimal) decimal.Decimal
}
