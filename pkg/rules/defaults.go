package rules

// DefaultRules returns the built-in naming conventions for game assets
func DefaultRules() []NamingRule {
	return []NamingRule{
		{
			Category:         "Script",
			NamePattern:      `^[A-Z]+[A-Za-z]+$`,
			ExtensionPattern: `\.cs$|\.js$`,
		},
		{
			Category:         "Model",
			NamePattern:      `^[A-Z]+[A-Za-z0-9]+$`,
			ExtensionPattern: `\.fbx$|\.obj$|\.max$|\.3ds$|\.blend$|\.dae$|\.dxf$`,
		},
		{
			Category:         "Material",
			NamePattern:      `^[A-Z]+(_?[A-Za-z0-9]+)+$`,
			ExtensionPattern: `\.mat$`,
		},
		{
			Category:         "Texture",
			NamePattern:      `^[A-Z]+(_?[A-Za-z0-9]+)+$`,
			ExtensionPattern: `\.jpg$|\.png$|\.tga$|\.bmp$|\.psd$|\.gif$|\.iff$|\.tiff$|\.pict$`,
		},
	}
}
