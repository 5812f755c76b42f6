package graphics

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// vertexStride is the byte stride per vertex: position (2 x float32) +
// color (4 x float32) + tex coords (2 x float32).
const vertexStride = 32

// Pipelines holds the render pipelines for the engine's sprite
// shaders, one per shader in a [ShaderSet]. Strip topologies are
// expanded to triangle lists before upload, so every pipeline runs a
// plain triangle list.
type Pipelines struct {
	device hal.Device

	uniformLayout hal.BindGroupLayout
	textureLayout hal.BindGroupLayout
	shapeLayout   hal.PipelineLayout
	texPipeLayout hal.PipelineLayout

	Shape     hal.RenderPipeline
	ShapeFlat hal.RenderPipeline
	Outline   hal.RenderPipeline
	Texture   hal.RenderPipeline
}

// spriteVertexLayout matches [Vertex]: position at location(0), color
// at location(1), tex coords at location(2).
func spriteVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1},
				{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
			},
		},
	}
}

// NewPipelines builds the sprite render pipelines against compiled
// shader modules. format is the surface's color format. On error any
// partially created resources are destroyed.
func NewPipelines(device hal.Device, modules *ShaderModules, format gputypes.TextureFormat) (*Pipelines, error) {
	p := &Pipelines{device: device}

	// Shape pipelines bind only the matrix uniform at binding(0). The
	// texture pipeline adds the sprite texture and its sampler.
	uniformLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "sprite_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create uniform bind group layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	textureLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "sprite_texture_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		p.Destroy()
		return nil, fmt.Errorf("create texture bind group layout: %w", err)
	}
	p.textureLayout = textureLayout

	shapeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "sprite_shape_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		p.Destroy()
		return nil, fmt.Errorf("create shape pipeline layout: %w", err)
	}
	p.shapeLayout = shapeLayout

	texPipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "sprite_texture_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.textureLayout},
	})
	if err != nil {
		p.Destroy()
		return nil, fmt.Errorf("create texture pipeline layout: %w", err)
	}
	p.texPipeLayout = texPipeLayout

	pipelines := []struct {
		label  string
		module hal.ShaderModule
		layout hal.PipelineLayout
		dst    *hal.RenderPipeline
	}{
		{"sprite_shape_pipeline", modules.Shape, p.shapeLayout, &p.Shape},
		{"sprite_shape_flat_pipeline", modules.ShapeFlat, p.shapeLayout, &p.ShapeFlat},
		{"sprite_outline_pipeline", modules.Outline, p.shapeLayout, &p.Outline},
		{"sprite_texture_pipeline", modules.Texture, p.texPipeLayout, &p.Texture},
	}

	blend := gputypes.BlendStatePremultiplied()
	for _, pl := range pipelines {
		pipe, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
			Label:  pl.label,
			Layout: pl.layout,
			Vertex: hal.VertexState{
				Module:     pl.module,
				EntryPoint: "vs_main",
				Buffers:    spriteVertexLayout(),
			},
			Fragment: &hal.FragmentState{
				Module:     pl.module,
				EntryPoint: "fs_main",
				Targets: []gputypes.ColorTargetState{
					{
						Format:    format,
						Blend:     &blend,
						WriteMask: gputypes.ColorWriteMaskAll,
					},
				},
			},
			Multisample: gputypes.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
			Primitive: gputypes.PrimitiveState{
				Topology: gputypes.PrimitiveTopologyTriangleList,
				CullMode: gputypes.CullModeNone,
			},
		})
		if err != nil {
			p.Destroy()
			return nil, fmt.Errorf("create %s: %w", pl.label, err)
		}
		*pl.dst = pipe
	}

	return p, nil
}

// Destroy releases all pipeline resources in reverse creation order.
// Safe to call twice or on a partially constructed value.
func (p *Pipelines) Destroy() {
	if p.device == nil {
		return
	}
	for _, pipe := range []*hal.RenderPipeline{&p.Texture, &p.Outline, &p.ShapeFlat, &p.Shape} {
		if *pipe != nil {
			p.device.DestroyRenderPipeline(*pipe)
			*pipe = nil
		}
	}
	if p.texPipeLayout != nil {
		p.device.DestroyPipelineLayout(p.texPipeLayout)
		p.texPipeLayout = nil
	}
	if p.shapeLayout != nil {
		p.device.DestroyPipelineLayout(p.shapeLayout)
		p.shapeLayout = nil
	}
	if p.textureLayout != nil {
		p.device.DestroyBindGroupLayout(p.textureLayout)
		p.textureLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	p.device = nil
}
