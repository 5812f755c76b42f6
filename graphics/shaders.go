package graphics

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// The GPU versions of the pipeline stages. The CPU rasterizer in this
// package implements the same semantics; these sources are what a HAL
// render pipeline runs instead.
var (
	//go:embed shaders/shape.wgsl
	shapeShaderWGSL string

	//go:embed shaders/shape_flat.wgsl
	shapeFlatShaderWGSL string

	//go:embed shaders/outline.wgsl
	outlineShaderWGSL string

	//go:embed shaders/texture.wgsl
	textureShaderWGSL string
)

// CompileToSPIRV compiles WGSL source to SPIR-V words. SPIR-V is
// little-endian 32-bit words.
func CompileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("graphics: compile shader: %w", err)
	}

	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// ShaderSet holds the compiled SPIR-V for every sprite shader.
type ShaderSet struct {
	Shape     []uint32
	ShapeFlat []uint32
	Outline   []uint32
	Texture   []uint32
}

// CompileShaders compiles all four embedded WGSL sources to SPIR-V.
// The engine runs this once at startup; a failure means the sources
// themselves are broken.
func CompileShaders() (*ShaderSet, error) {
	var (
		set = &ShaderSet{}
		err error
	)
	for _, s := range []struct {
		name string
		src  string
		dst  *[]uint32
	}{
		{"shape", shapeShaderWGSL, &set.Shape},
		{"shape_flat", shapeFlatShaderWGSL, &set.ShapeFlat},
		{"outline", outlineShaderWGSL, &set.Outline},
		{"texture", textureShaderWGSL, &set.Texture},
	} {
		if *s.dst, err = CompileToSPIRV(s.src); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return set, nil
}

// ShaderModules holds the HAL shader modules for a device.
type ShaderModules struct {
	device hal.Device

	Shape     hal.ShaderModule
	ShapeFlat hal.ShaderModule
	Outline   hal.ShaderModule
	Texture   hal.ShaderModule
}

// CreateModules creates HAL shader modules for the set on a device.
// Call [ShaderModules.Destroy] when done.
func (s *ShaderSet) CreateModules(device hal.Device) (*ShaderModules, error) {
	m := &ShaderModules{device: device}
	for _, mod := range []struct {
		label string
		spirv []uint32
		dst   *hal.ShaderModule
	}{
		{"sprite_shape", s.Shape, &m.Shape},
		{"sprite_shape_flat", s.ShapeFlat, &m.ShapeFlat},
		{"sprite_outline", s.Outline, &m.Outline},
		{"sprite_texture", s.Texture, &m.Texture},
	} {
		module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label:  mod.label,
			Source: hal.ShaderSource{SPIRV: mod.spirv},
		})
		if err != nil {
			m.Destroy()
			return nil, fmt.Errorf("graphics: create %s module: %w", mod.label, err)
		}
		*mod.dst = module
	}
	return m, nil
}

// Destroy releases the shader modules. Safe to call on a partially
// created set.
func (m *ShaderModules) Destroy() {
	if m.device == nil {
		return
	}
	for _, mod := range []hal.ShaderModule{m.Shape, m.ShapeFlat, m.Outline, m.Texture} {
		if mod != nil {
			m.device.DestroyShaderModule(mod)
		}
	}
	m.Shape, m.ShapeFlat, m.Outline, m.Texture = nil, nil, nil, nil
}
