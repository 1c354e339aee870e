package formats

import "encoding/json"

func init() {
	decoders[".json"] = json.Unmarshal
}
