package formats

import "gopkg.in/yaml.v3"

func init() {
	decoders[".yaml"] = yaml.Unmarshal
	decoders[".yml"] = yaml.Unmarshal
}
