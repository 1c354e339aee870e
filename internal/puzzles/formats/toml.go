package formats

import "github.com/BurntSushi/toml"

func init() {
	decoders[".toml"] = toml.Unmarshal
}
