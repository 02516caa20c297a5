package engine

import (
	"fmt"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
)

// GenerateSuggestions 根据关键词和进入难度生成四条执行建议
func GenerateSuggestions(keyword string, difficulty model.Difficulty) []string {
	suggestions := []string{
		fmt.Sprintf("从%s的细分需求切入市场", keyword),
		"重点关注用户体验和服务质量",
		"考虑与现有平台或企业合作",
	}

	if difficulty == model.DifficultyHigh {
		suggestions = append(suggestions, fmt.Sprintf("%s领域需要技术积累，建议组建专业团队", keyword))
	} else {
		suggestions = append(suggestions, fmt.Sprintf("%s市场进入门槛相对较低，适合快速试错", keyword))
	}

	return suggestions
}
