package configuration

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/iotaledger/hive.go/ierrors"
)

// lowerKeysParser is a koanf.Parser that lower cases every key of the decoded document, so
// file keys match flag and env var names regardless of how they were written.
type lowerKeysParser struct {
	unmarshal func([]byte, any) error
	marshal   func(any) ([]byte, error)
}

// parsers maps config file extensions to their parser.
var parsers = map[string]*lowerKeysParser{
	".json": {unmarshal: json.Unmarshal, marshal: json.Marshal},
	".yaml": {unmarshal: yaml.Unmarshal, marshal: yaml.Marshal},
	".yml":  {unmarshal: yaml.Unmarshal, marshal: yaml.Marshal},
}

// parserForFile picks the parser by the extension of filePath.
func parserForFile(filePath string) (koanf.Parser, error) {
	parser, ok := parsers[strings.ToLower(filepath.Ext(filePath))]
	if !ok {
		return nil, ierrors.Wrapf(ErrUnknownConfigFormat, "unable to load config file %s", filePath)
	}

	return parser, nil
}

func (p *lowerKeysParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var document map[string]interface{}
	if err := p.unmarshal(b, &document); err != nil {
		return nil, ierrors.Wrap(err, "unable to decode config")
	}

	return lowerKeys(document), nil
}

func (p *lowerKeysParser) Marshal(settings map[string]interface{}) ([]byte, error) {
	return p.marshal(settings)
}

// lowerKeys returns a copy of m with all keys lower cased. YAML decodes nested objects as
// map[interface{}]interface{}, those are converted to string keyed maps.
func lowerKeys(m map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(m))
	for key, value := range m {
		switch nested := value.(type) {
		case map[string]interface{}:
			value = lowerKeys(nested)
		case map[interface{}]interface{}:
			value = lowerKeys(cast.ToStringMap(nested))
		}

		result[strings.ToLower(key)] = value
	}

	return result
}
