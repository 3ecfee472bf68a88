package i18n

import "testing"

func TestLocalizer_T(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		id     string
		want   string
	}{
		{name: "english default", locale: "", id: TranslateButton, want: "Translate"},
		{name: "english explicit", locale: "en", id: InputLabel, want: "Enter text to translate:"},
		{name: "ukrainian", locale: "uk", id: TranslateButton, want: "Перекласти"},
		{name: "unknown locale falls back to english", locale: "de", id: OutputLabel, want: "Translated text:"},
		{name: "region subtag", locale: "uk-UA", id: OutputLabel, want: "Переклад:"},
		{name: "unknown id falls back to id", locale: "en", id: "NoSuchMessage", want: "NoSuchMessage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.locale)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := l.T(tt.id); got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestLocalizer_AllMessagesTranslated(t *testing.T) {
	ids := []string{WindowTitle, InputLabel, SourceLabel, TargetLabel, TranslateButton, OutputLabel}

	en, err := New("en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uk, err := New("uk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range ids {
		if en.T(id) == id {
			t.Errorf("missing english message %q", id)
		}
		if uk.T(id) == en.T(id) {
			t.Errorf("missing ukrainian message %q", id)
		}
	}
}
