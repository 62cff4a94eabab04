package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayPhrase(t *testing.T) {
	tests := []struct {
		name     string
		phrase   string
		revealed []string
		want     string
	}{
		{
			name:     "nothing revealed",
			phrase:   "AB BA",
			revealed: nil,
			want:     "_ _    _ _",
		},
		{
			name:     "partially revealed",
			phrase:   "AB BA",
			revealed: []string{"A"},
			want:     "A _    _ A",
		},
		{
			name:     "fully revealed",
			phrase:   "AB BA",
			revealed: []string{"A", "B"},
			want:     "A B    B A",
		},
		{
			name:     "lowercase revealed letters still match",
			phrase:   "AB",
			revealed: []string{"a"},
			want:     "A _",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayPhrase(tt.phrase, tt.revealed))
		})
	}
}

func TestIsComplete(t *testing.T) {
	assert.False(t, IsComplete("AB BA", []string{"A"}))
	assert.True(t, IsComplete("AB BA", []string{"A", "B"}))
	assert.True(t, IsComplete("", nil), "empty phrase is trivially complete")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "DENVER NUGGETS", Normalize("  denver   Nuggets "))
	assert.Equal(t, Normalize("a b"), Normalize("A  B"))
}

func TestUsablePhrase(t *testing.T) {
	assert.False(t, UsablePhrase("TOO SHORT"))
	assert.True(t, UsablePhrase("EXACTLY TWENTY CHARS"))
	assert.False(t, UsablePhrase("THIS GENERATED PHRASE RUNS FAR TOO LONG FOR THE BOARD"))
}

func TestCatalogPhrase(t *testing.T) {
	phrase, selected := CatalogPhrase("MARVEL MOVIES")
	assert.Equal(t, "MARVEL MOVIES", selected)
	assert.Contains(t, Catalog["MARVEL MOVIES"], phrase)

	phrase, selected = CatalogPhrase("NO SUCH CATEGORY")
	assert.Contains(t, Catalog, selected, "unknown category falls back to a real one")
	assert.Contains(t, Catalog[selected], phrase)
}
