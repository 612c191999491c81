package textclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"HeadingAndEmphasis", "# Title\n**bold** and *em*", "Title\nbold and em"},
		{"DeepHeading", "### Planting guide", "Planting guide"},
		{"InlineCode", "Use `NPK 15-15-15` at planting", "Use NPK 15-15-15 at planting"},
		{"Link", "See [the IITA guide](https://iita.org/maize) first", "See the IITA guide first"},
		{"HorizontalRule", "Maize\n---\nRice", "Maize\n\nRice"},
		{"Bullets", "Tasks:\n- weed\n* spray\n+ harvest", "Tasks:\n• weed\n• spray\n• harvest"},
		{"Numbered", "1. Clear land\n2. Plant seeds", "Clear land\nPlant seeds"},
		{"BlankLines", "Maize\n\n\n\n\nRice", "Maize\n\nRice"},
		{"TrimsOuterWhitespace", "\n\n  plain text  \n", "plain text"},
		{"PlainTextUntouched", "Plant cassava at the start of the rains.", "Plant cassava at the start of the rains."},
		{"StackedNumbering", "1. 2. step", "step"},
		{"Empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Clean(tc.in))
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"# Title\n**bold** and *em*",
		"1. 2. 3. nested numbering",
		"## January\n\n**Maize**\n- Clear land\n- Apply *manure*\n\n\n\n---\n**Rice**\n1. Nursery",
		"***x*** and `code` with [link](http://x)",
		"- - double bullet",
		"* * *",
		"####### seven hashes",
		"text\n\n\n\n",
		"• already clean",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equalf(t, once, Clean(once), "input %q", in)
	}
}
