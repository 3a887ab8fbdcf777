package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazypower/VoidReader-sub001/pkg/config"
	"github.com/lazypower/VoidReader-sub001/pkg/format"
)

func configFormat(listMarker string) config.FormatConfig {
	return config.FormatConfig{ListMarker: listMarker}
}

func TestFormatScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading trailing punctuation stripped",
			input: "# Heading.\n",
			want:  "# Heading\n",
		},
		{
			name:  "question mark preserved in heading",
			input: "# What is this?\n",
			want:  "# What is this?\n",
		},
		{
			name:  "list markers converge",
			input: "- a\n* b\n+ c\n",
			want:  "- a\n- b\n- c\n",
		},
		{
			name:  "nested list indentation preserved",
			input: "- a\n  * b\n    + c\n",
			want:  "- a\n  - b\n    - c\n",
		},
		{
			name:  "horizontal rule not treated as list marker",
			input: "a\n\n---\n\nb\n",
			want:  "a\n\n---\n\nb\n",
		},
		{
			name:  "blank lines inserted around heading",
			input: "Para\n# H\nMore\n",
			want:  "Para\n\n# H\n\nMore\n",
		},
		{
			name:  "seven hashes is not a heading",
			input: "a\n####### shouty.\nb\n",
			want:  "a\n####### shouty.\nb\n",
		},
		{
			name:  "hash glued to text is not a heading",
			input: "a\n#no-space.\nb\n",
			want:  "a\n#no-space.\nb\n",
		},
		{
			name:  "blank lines inserted around fence",
			input: "text\n```go\ncode\n```\nmore\n",
			want:  "text\n\n```go\ncode\n```\n\nmore\n",
		},
		{
			name:  "unterminated fence left alone",
			input: "before\n```go\ncode\n",
			want:  "before\n```go\ncode\n",
		},
		{
			name:  "tilde fence not closed by backticks",
			input: "~~~\ncode\n```\nstill code\n~~~\nafter\n",
			want:  "~~~\ncode\n```\nstill code\n~~~\n\nafter\n",
		},
		{
			name:  "blank run collapsed",
			input: "a\n\n\n\nb\n",
			want:  "a\n\nb\n",
		},
		{
			name:  "trailing whitespace trimmed",
			input: "word   \n",
			want:  "word\n",
		},
		{
			name:  "hard break preserved",
			input: "line break  \nnext\n",
			want:  "line break  \nnext\n",
		},
		{
			name:  "trailing newline appended",
			input: "plain text",
			want:  "plain text\n",
		},
		{
			name:  "empty input stays empty",
			input: "",
			want:  "",
		},
		{
			name:  "emphasis converges to asterisk",
			input: "some _it_ and __bold__ text\n",
			want:  "some *it* and **bold** text\n",
		},
		{
			name:  "heading at document start gets no leading blank",
			input: "# Title\n\nBody\n",
			want:  "# Title\n\nBody\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := format.Format(tt.input, format.DefaultOptions())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"# Heading.\nPara\n* item\n+ item   \n\n\n```go\ncode\n```\ntrailer",
		"|a|bb|\n|-|-|\n|1|22|\n",
		"Para with _emphasis_ and __strong__\n# H\ntext  \nhard break  \n",
		"",
		"just text",
		"```\nunterminated fence\nstill inside",
	}

	opts := format.DefaultOptions()
	for _, input := range inputs {
		once := format.Format(input, opts)
		twice := format.Format(once, opts)
		assert.Equal(t, once, twice, "format is not idempotent for %q", input)
	}
}

func TestFormatTrailingNewline(t *testing.T) {
	t.Parallel()

	t.Run("never doubles", func(t *testing.T) {
		t.Parallel()

		got := format.Format("text\n", format.DefaultOptions())
		assert.Equal(t, "text\n", got)
	})

	t.Run("disabled leaves text bare", func(t *testing.T) {
		t.Parallel()

		opts := format.DefaultOptions()
		opts.EnsureTrailingNewline = false
		got := format.Format("text", opts)
		assert.Equal(t, "text", got)
	})
}

func TestFormatOptionToggles(t *testing.T) {
	t.Parallel()

	t.Run("trim disabled", func(t *testing.T) {
		t.Parallel()

		opts := format.DefaultOptions()
		opts.TrimTrailingWhitespace = false
		got := format.Format("word   \n", opts)
		assert.Equal(t, "word   \n", got)
	})

	t.Run("collapse disabled", func(t *testing.T) {
		t.Parallel()

		opts := format.DefaultOptions()
		opts.CollapseBlankLines = false
		got := format.Format("a\n\n\nb\n", opts)
		assert.Equal(t, "a\n\n\nb\n", got)
	})
}

func TestWouldChange(t *testing.T) {
	t.Parallel()

	opts := format.DefaultOptions()
	assert.True(t, format.WouldChange("# Heading.\n", opts))
	assert.False(t, format.WouldChange("# Heading\n", opts))
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*format.Options)
		wantErr bool
	}{
		{"defaults valid", func(*format.Options) {}, false},
		{"plus list marker", func(o *format.Options) { o.ListMarker = '+' }, false},
		{"underscore emphasis", func(o *format.Options) { o.EmphasisMarker = '_' }, false},
		{"bad list marker", func(o *format.Options) { o.ListMarker = 'x' }, true},
		{"bad emphasis marker", func(o *format.Options) { o.EmphasisMarker = '-' }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := format.DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty config yields defaults", func(t *testing.T) {
		t.Parallel()

		opts, err := format.OptionsFromConfig(configFormat(""))
		require.NoError(t, err)
		assert.Equal(t, format.DefaultOptions(), opts)
	})

	t.Run("marker overrides applied", func(t *testing.T) {
		t.Parallel()

		fc := configFormat("*")
		fc.EmphasisMarker = "_"
		opts, err := format.OptionsFromConfig(fc)
		require.NoError(t, err)
		assert.Equal(t, byte('*'), opts.ListMarker)
		assert.Equal(t, byte('_'), opts.EmphasisMarker)
	})

	t.Run("invalid marker rejected", func(t *testing.T) {
		t.Parallel()

		_, err := format.OptionsFromConfig(configFormat("xx"))
		assert.Error(t, err)
	})

	t.Run("bool overrides applied", func(t *testing.T) {
		t.Parallel()

		off := false
		fc := configFormat("")
		fc.CollapseBlankLines = &off
		opts, err := format.OptionsFromConfig(fc)
		require.NoError(t, err)
		assert.False(t, opts.CollapseBlankLines)
		assert.True(t, opts.TrimTrailingWhitespace)
	})
}
