package openai

import (
	"encoding/json"
	"fmt"

	"github.com/mycostore/poradnyk/core"
)

const advisorPromptTemplate = `Ти — експерт-консультант інтернет-магазину грибних добавок і вітамінів.
Твоє завдання: допомагати клієнтам підбирати добавки під їхній запит.

Підібрані товари (JSON):
%s

Правила:
1. Завжди відповідай мовою користувача (якщо пишуть російською — відповідай російською, if English - English).
2. Рекомендуй ЛИШЕ товари з наведеного списку. Не вигадуй інших товарів, цін або властивостей.
3. Якщо користувач питає про щось інше, запропонуй найближчий аналог зі списку.
4. Відповіді мають бути чіткими, корисними і доброзичливими.
5. Не давай медичних діагнозів і не обіцяй лікувального ефекту.`

// buildAdvisorPrompt renders the system instruction with the ranked product
// cards embedded as JSON. The cards are already truncated and ordered by the
// relevance engine.
func buildAdvisorPrompt(cards []core.ProductCard) (string, error) {
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(advisorPromptTemplate, string(data)), nil
}
