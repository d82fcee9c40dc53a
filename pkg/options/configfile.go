package options

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/xpile/pkg/errors"
	"github.com/arthur-debert/xpile/pkg/filesystem"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/tidwall/jsonc"
)

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// jsoncParser accepts JSON with comments and trailing commas.
type jsoncParser struct{}

func (jsoncParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	return json.Parser().Unmarshal(jsonc.ToJSON(b))
}

func (jsoncParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return json.Parser().Marshal(m)
}

// parserFor picks the config format from the file extension. Anything
// unrecognized is read as strict JSON.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser()
	case ".yaml", ".yml":
		return yaml.Parser()
	case ".jsonc":
		return jsoncParser{}
	default:
		return json.Parser()
	}
}

// ConfigLoader reads CLI configuration files.
type ConfigLoader struct {
	FS filesystem.FS
}

// NewConfigLoader returns a loader reading through fsys.
func NewConfigLoader(fsys filesystem.FS) ConfigLoader {
	return ConfigLoader{FS: fsys}
}

// Load reads the object stored at path and returns it with top-level keys
// in camel case. Nested values are returned as parsed.
func (l ConfigLoader) Load(path string) (map[string]any, error) {
	fsys := l.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot find config file: %s", path).
				WithDetail(errors.DetailPath, path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file: %s", path).
			WithDetail(errors.DetailPath, path)
	}

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, parserFor(path)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file: %s", path).
			WithDetail(errors.DetailPath, path)
	}

	return NormalizeKeys(k.Raw()), nil
}
