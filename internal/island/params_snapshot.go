package island

import (
	"strconv"

	"islandgen/internal/core"
)

// Parameters reports the active configuration grouped for display.
func (g *Generator) Parameters() core.ParameterSnapshot {
	cfg := g.Config()
	seed := cfg.Seed
	if cur := g.Current(); cur != nil {
		seed = cur.Seed
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("width", "Width", cfg.Width),
				intParam("height", "Height", cfg.Height),
				int64Param("seed", "Seed", seed),
				choiceParam("mode", "Mode", string(cfg.Mode)),
				choiceParam("output", "Output", string(cfg.Output)),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				intParam("gradient_x", "Gradient width", cfg.GradientLatticeX),
				intParam("gradient_y", "Gradient height", cfg.GradientLatticeY),
				floatParam("noise_amplitude", "Noise amplitude", cfg.NoiseAmplitude),
				choiceParam("layer_noise", "Layer noise", string(cfg.LayerNoise)),
				floatParam("noise_scale_1", "Noise scale 1", cfg.NoiseScale1),
				floatParam("noise_scale_2", "Noise scale 2", cfg.NoiseScale2),
				floatParam("noise_weight_1", "Noise weight 1", cfg.NoiseWeight1),
				floatParam("noise_weight_2", "Noise weight 2", cfg.NoiseWeight2),
				floatParam("noise_strength", "Noise strength", cfg.NoiseStrength),
			},
		},
		{
			Name: "Shape",
			Params: []core.Parameter{
				floatParam("water_level", "Water level", cfg.WaterLevel),
				boolParam("distance_distortion", "Distance distortion", cfg.UseDistanceDistortion),
				floatParam("distortion_amount", "Distortion amount", cfg.DistortionAmount),
			},
		},
		{
			Name: "Shading",
			Params: []core.Parameter{
				boolParam("hillshading", "Hillshading", cfg.EnableHillshading),
				floatParam("hillshade_strength", "Hillshade strength", cfg.HillshadeStrength),
			},
		},
		{
			Name: "Geometry",
			Params: []core.Parameter{
				floatParam("island_height", "Island height", cfg.VerticalScale),
				intParam("voxel_size", "Voxel size", cfg.VoxelSize),
				floatParam("mesh_height", "Mesh height", cfg.MeshHeightMultiplier),
				intParam("mesh_resolution", "Mesh resolution", cfg.MeshResolution),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables.
func (g *Generator) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "gradient_x", Label: "Gradient W", Type: core.ParamTypeInt, Step: 1, Min: 2, HasMin: true, Max: 64, HasMax: true},
		{Key: "gradient_y", Label: "Gradient H", Type: core.ParamTypeInt, Step: 1, Min: 2, HasMin: true, Max: 64, HasMax: true},
		{Key: "noise_scale_1", Label: "Scale 1", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, HasMin: true, Max: 2, HasMax: true},
		{Key: "noise_scale_2", Label: "Scale 2", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, HasMin: true, Max: 2, HasMax: true},
		{Key: "noise_weight_1", Label: "Weight 1", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "noise_weight_2", Label: "Weight 2", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "noise_strength", Label: "Strength", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, HasMin: true},
		{Key: "water_level", Label: "Water", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "distortion_amount", Label: "Distortion", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, HasMin: true, Max: 2, HasMax: true},
		{Key: "distance_distortion", Label: "Distort", Type: core.ParamTypeBool},
		{Key: "hillshading", Label: "Shading", Type: core.ParamTypeBool},
		{Key: "hillshade_strength", Label: "Hillshade", Type: core.ParamTypeFloat, Step: 100, Min: 0, HasMin: true},
		{Key: "island_height", Label: "Island H", Type: core.ParamTypeFloat, Step: 1, Min: 1, HasMin: true},
		{Key: "voxel_size", Label: "Voxel", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
	}
}

// SetIntParameter updates an integer tunable and regenerates with the
// current seed. It reports false for unknown keys and rejected values.
func (g *Generator) SetIntParameter(key string, value int) bool {
	if intField(&Config{}, key) == nil {
		return false
	}
	_, err := g.Update(func(c *Config) { *intField(c, key) = value })
	return err == nil
}

// SetFloatParameter updates a floating point tunable and regenerates with
// the current seed.
func (g *Generator) SetFloatParameter(key string, value float64) bool {
	if floatField(&Config{}, key) == nil {
		return false
	}
	_, err := g.Update(func(c *Config) { *floatField(c, key) = value })
	return err == nil
}

// SetBoolParameter toggles a boolean tunable and regenerates.
func (g *Generator) SetBoolParameter(key string, value bool) bool {
	if boolField(&Config{}, key) == nil {
		return false
	}
	_, err := g.Update(func(c *Config) { *boolField(c, key) = value })
	return err == nil
}

func intField(c *Config, key string) *int {
	switch key {
	case "width":
		return &c.Width
	case "height":
		return &c.Height
	case "gradient_x":
		return &c.GradientLatticeX
	case "gradient_y":
		return &c.GradientLatticeY
	case "voxel_size":
		return &c.VoxelSize
	case "mesh_resolution":
		return &c.MeshResolution
	}
	return nil
}

func floatField(c *Config, key string) *float64 {
	switch key {
	case "noise_scale_1":
		return &c.NoiseScale1
	case "noise_scale_2":
		return &c.NoiseScale2
	case "noise_weight_1":
		return &c.NoiseWeight1
	case "noise_weight_2":
		return &c.NoiseWeight2
	case "noise_strength":
		return &c.NoiseStrength
	case "noise_amplitude":
		return &c.NoiseAmplitude
	case "water_level":
		return &c.WaterLevel
	case "distortion_amount":
		return &c.DistortionAmount
	case "hillshade_strength":
		return &c.HillshadeStrength
	case "island_height":
		return &c.VerticalScale
	case "mesh_height":
		return &c.MeshHeightMultiplier
	}
	return nil
}

func boolField(c *Config, key string) *bool {
	switch key {
	case "distance_distortion":
		return &c.UseDistanceDistortion
	case "hillshading":
		return &c.EnableHillshading
	}
	return nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func choiceParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeChoice,
		Value: value,
	}
}
