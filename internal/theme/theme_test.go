package theme

import (
	"testing"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

func TestColorsParse(t *testing.T) {
	for _, hex := range []string{Primary, Secondary, Background, BackgroundLight, Text, Accent} {
		if _, err := field.ParseHex(hex); err != nil {
			t.Errorf("%s: %v", hex, err)
		}
	}
}

func TestParticlesPalette(t *testing.T) {
	p := Particles()
	if len(p) != 2 || p[0] != Primary || p[1] != Secondary {
		t.Fatalf("palette = %v", p)
	}
}
