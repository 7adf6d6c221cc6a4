package monitor

import (
	"context"
	"fmt"
	"strings"

	"github.com/ftarasenko/driftwatch/internal/service/llm"
)

type llmExplainer struct {
	llmSvc llm.Service
}

// NewLLMExplainer 基于大模型为告警生成简短解读
func NewLLMExplainer(llmSvc llm.Service) Explainer {
	return &llmExplainer{
		llmSvc: llmSvc,
	}
}

func (e *llmExplainer) Explain(ctx context.Context, alert Alert) (string, error) {
	prompt := fmt.Sprintf("在过去%s内, %s排除%s联动影响后独立变化了%s%%, "+
		"当前%s价格%s, %s价格%s。\n"+
		"请用一两句话向交易员说明这个独立异动可能意味着什么, 直接给出结论, 不要寒暄。",
		alert.WindowElapsed, alert.TargetSymbol, alert.InfluenceSymbol, alert.IndependentChange,
		alert.InfluenceSymbol, alert.InfluencePrice, alert.TargetSymbol, alert.TargetPrice)

	answer, err := e.llmSvc.AskOnce(ctx, llm.Question{Content: prompt})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer.Content), nil
}
