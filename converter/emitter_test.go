package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t testing.TB, input string) []Node {
	t.Helper()

	nodes, err := Parse(input)
	require.NoError(t, err)
	return normalizeWhitespace(nodes, WhitespaceCollapse)
}

func TestEmitNestedElements(t *testing.T) {
	nodes := mustParse(t, `<div class="a"><span>Hi</span></div>`)

	got := Emit(nodes, EmitOptions{IndentWidth: 2})

	want := `div [ class' "a" ] [
  span [] [
    text "Hi"
  ]
]`
	assert.Equal(t, want, got)
}

func TestEmitIndentation(t *testing.T) {
	nodes := mustParse(t, `<ul><li>x</li></ul>`)

	t.Run("four spaces", func(t *testing.T) {
		want := "ul [] [\n    li [] [\n        text \"x\"\n    ]\n]"
		assert.Equal(t, want, Emit(nodes, EmitOptions{IndentWidth: 4}))
	})

	t.Run("tabs ignore width", func(t *testing.T) {
		want := "ul [] [\n\tli [] [\n\t\ttext \"x\"\n\t]\n]"
		assert.Equal(t, want, Emit(nodes, EmitOptions{IndentWidth: 8, UseTabs: true}))
	})

	t.Run("zero width uses default", func(t *testing.T) {
		want := "ul [] [\n  li [] [\n    text \"x\"\n  ]\n]"
		assert.Equal(t, want, Emit(nodes, EmitOptions{}))
	})

	t.Run("invalid width falls back", func(t *testing.T) {
		assert.Equal(t, Emit(nodes, EmitOptions{}), Emit(nodes, EmitOptions{IndentWidth: -3}))
	})
}

func TestEmitReasonSyntax(t *testing.T) {
	nodes := mustParse(t, `<div class="a"><span>Hi</span><br></div>`)

	got := Emit(nodes, EmitOptions{Syntax: SyntaxReason})

	want := `div([class'("a")], [
  span([], [
    text("Hi")
  ]),
  br([], [])
])`
	assert.Equal(t, want, got)
}

func TestEmitLeaves(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		syntax SyntaxStyle
		want   string
	}{
		{
			name:  "void element",
			input: `<br>`,
			want:  `br [] []`,
		},
		{
			name:   "void element in reason",
			input:  `<br/>`,
			syntax: SyntaxReason,
			want:   `br([], [])`,
		},
		{
			name:  "primed constructors and boolean attributes",
			input: `<input type="checkbox" checked>`,
			want:  `input' [ type' "checkbox"; checked true ] []`,
		},
		{
			name:  "unknown tag passes through as generic node",
			input: `<my-widget data-id="7"></my-widget>`,
			want:  `node "my-widget" [ attribute "" "data-id" "7" ] []`,
		},
		{
			name:   "unknown tag in reason",
			input:  `<my-widget data-id="7"></my-widget>`,
			syntax: SyntaxReason,
			want:   `node("my-widget", [attribute("", "data-id", "7")], [])`,
		},
		{
			name:  "style is split into declarations",
			input: `<hr style="color: red; margin:0;">`,
			want:  `hr [ style "color" "red"; style "margin" "0" ] []`,
		},
		{
			name:  "unparseable style stays a generic attribute",
			input: `<hr style="color">`,
			want:  `hr [ attribute "" "style" "color" ] []`,
		},
		{
			name:  "quoted style value stays a generic attribute",
			input: `<p style="content: 'a;b:c'"></p>`,
			want:  `p [ attribute "" "style" "content: 'a;b:c'" ] []`,
		},
		{
			name:  "semicolon inside parentheses stays a generic attribute",
			input: `<p style="background: url(a;b)"></p>`,
			want:  `p [ attribute "" "style" "background: url(a;b)" ] []`,
		},
		{
			name:  "balanced parentheses still split",
			input: `<p style="color: rgb(1, 2, 3); width: calc(100% - 2px)"></p>`,
			want:  `p [ style "color" "rgb(1, 2, 3)"; style "width" "calc(100% - 2px)" ] []`,
		},
		{
			name:  "bare text",
			input: `plain`,
			want:  `text "plain"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Emit(mustParse(t, tt.input), EmitOptions{Syntax: tt.syntax})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmitMultipleRoots(t *testing.T) {
	nodes := mustParse(t, "<li>a</li>\n<li>b</li>")

	want := "li [] [\n  text \"a\"\n];\nli [] [\n  text \"b\"\n]"
	assert.Equal(t, want, Emit(nodes, EmitOptions{}))
}

func TestEmitEscapesStringLiterals(t *testing.T) {
	nodes := []Node{Text("say \"hi\" \\ \n\tend\x01")}

	got := Emit(nodes, EmitOptions{})

	assert.Equal(t, `text "say \"hi\" \\ \n\tend\001"`, got)
}

func TestEmitUnicodeStringLiterals(t *testing.T) {
	t.Run("ocaml", func(t *testing.T) {
		got := Emit([]Node{Text("héllo — ü")}, EmitOptions{})
		assert.Equal(t, "text {js|héllo — ü|js}", got)
	})

	t.Run("reason", func(t *testing.T) {
		got := Emit([]Node{Text("héllo — ü")}, EmitOptions{Syntax: SyntaxReason})
		assert.Equal(t, "text({js|héllo — ü|js})", got)
	})

	t.Run("escapes", func(t *testing.T) {
		got := Emit([]Node{Text("é \"q\" \\ |js} \n\x01")}, EmitOptions{})
		assert.Equal(t, `text {js|é "q" \\ \u007cjs} \n\u0001|js}`, got)
	})

	t.Run("attribute values", func(t *testing.T) {
		nodes := mustParse(t, `<a title="café" data-x="naïve">x</a>`)
		got := Emit(nodes, EmitOptions{})
		assert.Contains(t, got, `title {js|café|js}`)
		assert.Contains(t, got, `attribute "" "data-x" {js|naïve|js}`)
	})
}

func TestEmitEmptyInput(t *testing.T) {
	assert.Equal(t, "", Emit(nil, EmitOptions{}))
	assert.Equal(t, "", Emit(mustParse(t, ""), EmitOptions{}))
}

func TestEmitIsTotal(t *testing.T) {
	nodes := []Node{
		{},
		{Type: ElementNode, Tag: "x y", Attrs: []Attribute{{Key: "", Val: ""}}},
	}

	assert.NotPanics(t, func() {
		got := Emit(nodes, EmitOptions{Syntax: SyntaxStyle("bogus"), StyleMode: StyleMode("bogus")})
		assert.Equal(t, "node \"\" [] [];\nnode \"x y\" [ attribute \"\" \"\" \"\" ] []", got)
	})
}

func TestEmitIsDeterministic(t *testing.T) {
	nodes := mustParse(t, `<form action="/s" method="post" class="f" id="x" data-a="1" data-b="2">
  <label for="q">Query</label>
  <input id="q" name="q" placeholder="search" required autofocus>
  <button type="submit" disabled>Go</button>
</form>`)

	opts := EmitOptions{IndentWidth: 3}
	first := Emit(nodes, opts)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Emit(nodes, opts))
	}
}

func TestEmitterWarnings(t *testing.T) {
	nodes := mustParse(t, `<blink onclick="go()" data-x="1">x</blink>`)

	t.Run("generic attributes", func(t *testing.T) {
		e := newEmitter(Config{})
		_ = e.emit(nodes)

		require.Len(t, e.warnings, 2)
		assert.Equal(t, WarningUnknownTag, e.warnings[0].Type)
		assert.Equal(t, "blink", e.warnings[0].Tag)
		assert.Equal(t, WarningUnknownAttribute, e.warnings[1].Type)
		assert.Contains(t, e.warnings[1].Message, "onclick")
	})

	t.Run("skipped attributes", func(t *testing.T) {
		e := newEmitter(Config{EmitOptions: EmitOptions{UnknownAttributes: UnknownSkip}})
		got := e.emit(nodes)

		assert.Equal(t, "node \"blink\" [] [\n  text \"x\"\n]", got)
		require.Len(t, e.warnings, 3)
		assert.Equal(t, WarningDroppedAttribute, e.warnings[1].Type)
		assert.Equal(t, WarningDroppedAttribute, e.warnings[2].Type)
	})
}
