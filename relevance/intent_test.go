package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntents(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []Intent
	}{
		{
			name:  "energy from partial word",
			query: "хочу більше енергії",
			want:  []Intent{IntentEnergy},
		},
		{
			name:  "sleep from declined forms",
			query: "не можу заснути, безсоння замучило",
			want:  []Intent{IntentSleep},
		},
		{
			name:  "russian spelling",
			query: "нет энергии и постоянно устал",
			want:  []Intent{IntentEnergy},
		},
		{
			name:  "multiple intents",
			query: "щось для енергії та імунітету",
			want:  []Intent{IntentImmunity, IntentEnergy},
		},
		{
			name:  "deterministic order follows Intents",
			query: "від стресу та для сну",
			want:  []Intent{IntentSleep, IntentStress},
		},
		{
			name:  "english fragments",
			query: "can't sleep at all",
			want:  []Intent{IntentSleep},
		},
		{
			name:  "focus and digestion",
			query: "покращити пам'ять і травлення",
			want:  []Intent{IntentFocus, IntentDigestion},
		},
		{
			name:  "no intent",
			query: "доставка у київ",
			want:  nil,
		},
		{
			name:  "empty query",
			query: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntents(Normalize(tt.query)))
		})
	}
}
