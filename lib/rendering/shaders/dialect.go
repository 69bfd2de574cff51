package shaders

import (
	"fmt"
	"strings"
)

// Dialect selects the version line and compatibility macros prepended to a
// stage. The sample shaders are written in the GLSL 1.20 style (attribute,
// varying, texture2D) and write their output to frag_color; the preamble maps
// those onto whatever the active profile understands.
type Dialect int

const (
	DialectCore Dialect = iota
	DialectLegacy
	DialectES
)

var dialectNames = map[Dialect]string{
	DialectCore:   "core",
	DialectLegacy: "legacy",
	DialectES:     "es",
}

func ParseDialect(s string) (Dialect, error) {
	for d, name := range dialectNames {
		if strings.EqualFold(s, name) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown shader dialect %q (want core, legacy or es)", s)
}

func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return fmt.Sprintf("dialect(%d)", int(d))
}

func (d *Dialect) UnmarshalText(b []byte) error {
	parsed, err := ParseDialect(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Dialect) Preamble(stage Stage) string {
	var b strings.Builder
	switch d {
	case DialectCore:
		b.WriteString("#version 410 core\n")
		if stage == StageVertex {
			b.WriteString("#define attribute in\n")
			b.WriteString("#define varying out\n")
		} else {
			b.WriteString("#define varying in\n")
			b.WriteString("#define texture2D texture\n")
			b.WriteString("out vec4 frag_color;\n")
		}
	case DialectLegacy:
		b.WriteString("#version 120\n")
		if stage == StageFragment {
			b.WriteString("#define frag_color gl_FragColor\n")
		}
	case DialectES:
		b.WriteString("#version 100\n")
		if stage == StageFragment {
			b.WriteString("precision mediump float;\n")
			b.WriteString("#define frag_color gl_FragColor\n")
		}
	}
	return b.String()
}
