package profile

// Profile is a named set of output settings.
type Profile struct {
	Name    string
	Quality int    // encoding quality 1-100
	Colors  int    // palette size 2-256; 256 skips quantization
	Format  string // output format
}

// DefaultName is the profile used when none is requested.
const DefaultName = "default"

// Built-in profiles.
var profiles = map[string]Profile{
	"default": {
		Name:    "default",
		Quality: 85,
		Colors:  256,
		Format:  "jpeg",
	},
	"compact": {
		Name:    "compact",
		Quality: 75,
		Colors:  64,
		Format:  "jpeg",
	},
	"pixel": {
		Name:    "pixel", // crisp pixel art: small palette, lossless container
		Quality: 100,
		Colors:  32,
		Format:  "png",
	},
	"web": {
		Name:    "web",
		Quality: 80,
		Colors:  256,
		Format:  "webp",
	},
}

// Get returns a profile by name. Falls back to default if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles[DefaultName]
	p.Name = name // preserve requested name
	return p
}

// Known reports whether name is a built-in profile.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}

// Override returns p with every non-zero argument replacing its field.
func (p Profile) Override(quality, colors int, format string) Profile {
	if quality != 0 {
		p.Quality = quality
	}
	if colors != 0 {
		p.Colors = colors
	}
	if format != "" {
		p.Format = format
	}
	return p
}
