// Package targets loads the device description document (targets.json).
package targets

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/fwtarget/internal/core/ports"
	"go.trai.ch/zerr"
)

// SchemaURL identifies the embedded document schema.
const SchemaURL = "https://go.trai.ch/fwtarget/targets.schema.json"

//go:embed schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decode embedded schema")
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(SchemaURL, doc); err != nil {
		return nil, zerr.Wrap(err, "failed to register embedded schema")
	}
	return c.Compile(SchemaURL)
})

// Parser implements ports.DescriptionParser.
type Parser struct{}

var _ ports.DescriptionParser = (*Parser)(nil)

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// LoadDeviceDescriptions reads, validates and decodes the document at path.
// Devices keep the order in which they appear in the file.
func (p *Parser) LoadDeviceDescriptions(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the resolved checkout
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrDescriptionNotFound, path), "path", path)
	}
	if err != nil {
		return nil, parseError(path, err)
	}

	if err := validate(data); err != nil {
		return nil, parseError(path, err)
	}

	doc, err := decodeOrdered(data)
	if err != nil {
		return nil, parseError(path, err)
	}
	return doc, nil
}

func validate(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return sch.Validate(inst)
}

// decodeOrdered walks the top-level object token by token so that device order survives.
func decodeOrdered(data []byte) (*domain.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	doc := domain.NewDocument()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		id, ok := tok.(string)
		if !ok {
			return nil, zerr.New("expected device id")
		}

		var entry domain.DeviceEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "device "+id), "device_id", id)
		}
		doc.Add(id, entry)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return doc, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return zerr.With(zerr.New("unexpected token"), "want", want.String())
	}
	return nil
}

func parseError(path string, cause error) error {
	return zerr.With(zerr.Wrap(domain.ErrDescriptionParse, path+": "+cause.Error()), "path", path)
}
