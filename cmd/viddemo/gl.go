package main

import (
	"fmt"
	"image"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"

	vid "github.com/WimbledonLabs/graphics-vid"
)

type Texture struct {
	tex uint32
}

func (t Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
}

// CreateTexture allocates an RGBA texture of the given size. Sizes need not
// be powers of two, so wrapping is clamped and there are no mipmaps.
func CreateTexture(width, height int, filter int32) (Texture, error) {
	var tex uint32
	gl.GenTextures(1, &tex)
	if tex == 0 {
		return Texture{}, fmt.Errorf("glGenTextures failed")
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(width), int32(height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	return Texture{tex}, nil
}

// Upload replaces the texture contents with img, which must match the
// size the texture was created with.
func (t Texture) Upload(img *image.RGBA) {
	t.Bind()
	size := img.Bounds().Size()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		int32(size.X), int32(size.Y),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

func (t Texture) Close() error {
	if t.tex != 0 {
		gl.DeleteTextures(1, &t.tex)
	}
	return nil
}

type Shader struct {
	shader uint32
}

func GetShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]uint8, length)
	var logLen int32
	gl.GetShaderInfoLog(shader, length, &logLen, &log[0])
	return string(log[:logLen])
}

func CreateShader(shaderType uint32, source string) (Shader, error) {
	shader := gl.CreateShader(shaderType)
	data := gl.Str(source)
	length := int32(len(source))
	gl.ShaderSource(shader, 1, &data, &length)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := GetShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return Shader{}, fmt.Errorf("shader compilation failed: %s", msg)
	}
	return Shader{shader}, nil
}

func (s Shader) Close() error {
	if s.shader != 0 {
		gl.DeleteShader(s.shader)
	}
	return nil
}

type Program struct {
	program        uint32
	vertexShader   Shader
	fragmentShader Shader
}

func GetProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]uint8, length)
	var logLen int32
	gl.GetProgramInfoLog(program, length, &logLen, &log[0])
	return string(log[:logLen])
}

func CreateProgram(vertexShader string, fragmentShader string) (Program, error) {
	vs, err := CreateShader(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return Program{}, err
	}
	fs, err := CreateShader(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		_ = vs.Close()
		return Program{}, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs.shader)
	gl.AttachShader(program, fs.shader)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := GetProgramInfoLog(program)
		gl.DeleteProgram(program)
		_ = vs.Close()
		_ = fs.Close()
		return Program{}, fmt.Errorf("program link failed: %s", msg)
	}
	return Program{program, vs, fs}, nil
}

func (p Program) GetAttribLocation(name string) int32 {
	return gl.GetAttribLocation(p.program, gl.Str(name))
}

func (p Program) GetUniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.program, gl.Str(name))
}

func (p Program) Use() {
	gl.UseProgram(p.program)
}

func (p Program) Close() error {
	if err := p.vertexShader.Close(); err != nil {
		return err
	}
	if err := p.fragmentShader.Close(); err != nil {
		return err
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
	}
	return nil
}

const (
	quadVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    uniform mat4 u_transform;
    varying vec2 v_texcoord;
    void main(void) {
      gl_Position = u_transform * vec4(a_position, 0.0, 1.0);
      v_texcoord = a_texcoord;
    }` + "\x00"
	quadFragmentShader = `
    precision mediump float;
    uniform sampler2D u_tex;
    varying vec2 v_texcoord;
    void main(void) {
      gl_FragColor = vec4(texture2D(u_tex, v_texcoord).rgb, 1.0);
    }` + "\x00"
)

type quadVertex struct {
	position [2]float32
	texcoord [2]float32
}

// Row 0 of the display is the top of the screen, so t runs downwards.
var quadVertices = [6]quadVertex{
	{[2]float32{-1, 1}, [2]float32{0, 0}},
	{[2]float32{-1, -1}, [2]float32{0, 1}},
	{[2]float32{1, -1}, [2]float32{1, 1}},
	{[2]float32{1, -1}, [2]float32{1, 1}},
	{[2]float32{1, 1}, [2]float32{1, 0}},
	{[2]float32{-1, 1}, [2]float32{0, 0}},
}

// Presenter draws an encoded display buffer as a textured quad that keeps
// the frame's aspect ratio inside the window.
type Presenter struct {
	program     Program
	tex         Texture
	img         *image.RGBA
	a_position  int32
	a_texcoord  int32
	u_transform int32
	u_tex       int32
}

func CreatePresenter(width, height int) (*Presenter, error) {
	program, err := CreateProgram(quadVertexShader, quadFragmentShader)
	if err != nil {
		return nil, err
	}
	tex, err := CreateTexture(width, height, gl.NEAREST)
	if err != nil {
		_ = program.Close()
		return nil, err
	}
	return &Presenter{
		program:     program,
		tex:         tex,
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		a_position:  program.GetAttribLocation("a_position\x00"),
		a_texcoord:  program.GetAttribLocation("a_texcoord\x00"),
		u_transform: program.GetUniformLocation("u_transform\x00"),
		u_tex:       program.GetUniformLocation("u_tex\x00"),
	}, nil
}

// Letterbox returns the transform that fits a frame of the given size into
// a window of size win without distortion.
func Letterbox(frame, win image.Point) mgl.Mat4 {
	if frame.X <= 0 || frame.Y <= 0 || win.X <= 0 || win.Y <= 0 {
		return mgl.Ident4()
	}
	fa := float32(frame.X) / float32(frame.Y)
	wa := float32(win.X) / float32(win.Y)
	sx, sy := float32(1), float32(1)
	if fa > wa {
		sy = wa / fa
	} else {
		sx = fa / wa
	}
	return mgl.Scale3D(sx, sy, 1)
}

// Present uploads d and draws it to a window of size win.
func (p *Presenter) Present(d *vid.Display, win image.Point) {
	d.CopyRGBA(p.img)
	p.tex.Upload(p.img)

	p.program.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	p.tex.Bind()
	gl.Uniform1i(p.u_tex, 0)
	mTransform := Letterbox(image.Pt(d.Width, d.Height), win)
	gl.UniformMatrix4fv(p.u_transform, 1, false, &mTransform[0])

	stride := int32(unsafe.Sizeof(quadVertex{}))
	gl.EnableVertexAttribArray(uint32(p.a_position))
	gl.VertexAttribPointer(uint32(p.a_position), 2, gl.FLOAT, false, stride,
		gl.Ptr(&quadVertices[0].position[0]))
	gl.EnableVertexAttribArray(uint32(p.a_texcoord))
	gl.VertexAttribPointer(uint32(p.a_texcoord), 2, gl.FLOAT, false, stride,
		gl.Ptr(&quadVertices[0].texcoord[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(quadVertices)))
	gl.DisableVertexAttribArray(uint32(p.a_position))
	gl.DisableVertexAttribArray(uint32(p.a_texcoord))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (p *Presenter) Close() error {
	if err := p.tex.Close(); err != nil {
		return err
	}
	return p.program.Close()
}
