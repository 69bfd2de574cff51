package shaders

// Stage is one phase of the shader pipeline.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Device is the part of a graphics context the builder talks to. A context
// must be current on the calling thread for every call.
//
// Handles are driver object names; 0 means creation failed. Location lookups
// return -1 for names the linked program does not expose.
type Device interface {
	CreateShader(stage Stage) uint32
	CompileShader(shader uint32, source string) (ok bool, infoLog string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32) (ok bool, infoLog string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32
}
