package cue

import "testing"

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}
	return v
}

func TestValidateLexicon(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		data    map[string]any
		wantErr bool
	}{
		{
			name: "valid lists",
			data: map[string]any{
				"positive":    []any{"brilliant", "stellar"},
				"cta_phrases": []any{"act fast"},
			},
		},
		{
			name: "empty map",
			data: map[string]any{},
		},
		{
			name:    "unknown field rejected",
			data:    map[string]any{"power_words": []any{"wow"}},
			wantErr: true,
		},
		{
			name:    "non-list value rejected",
			data:    map[string]any{"positive": 42},
			wantErr: true,
		},
		{
			name:    "non-string element rejected",
			data:    map[string]any{"positive": []any{"ok", 7}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate("lexicon", tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWeights(t *testing.T) {
	v := newTestValidator(t)

	vector := func(emotional float64) map[string]any {
		return map[string]any{
			"emotional_appeal":  emotional,
			"urgency":           0.10,
			"social_proof":      0.20,
			"value_proposition": 0.25,
			"call_to_action":    0.10,
			"trust_building":    0.15,
		}
	}

	tests := []struct {
		name    string
		data    map[string]any
		wantErr bool
	}{
		{
			name: "valid vector",
			data: map[string]any{"blog": vector(0.20)},
		},
		{
			name:    "unknown content type rejected",
			data:    map[string]any{"podcast": vector(0.20)},
			wantErr: true,
		},
		{
			name:    "weight above one rejected",
			data:    map[string]any{"blog": vector(1.20)},
			wantErr: true,
		},
		{
			name:    "negative weight rejected",
			data:    map[string]any{"blog": vector(-0.20)},
			wantErr: true,
		},
		{
			name: "missing factor rejected",
			data: map[string]any{"blog": map[string]any{
				"emotional_appeal": 0.50,
				"urgency":          0.50,
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate("weights", tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	v := newTestValidator(t)
	if err := v.Validate("nonexistent", map[string]any{}); err == nil {
		t.Error("Validate() succeeded with an unknown schema name")
	}
}
