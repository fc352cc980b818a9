package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"
)

// Custom formats are declared in CUE files:
//
//	format: ntp: {
//		divisor:     1
//		offset:      -2208988800
//		unit:        "seconds"
//		description: "1900-01-01"
//	}
//
// Only uniform formats can be declared this way; the two non-uniform
// transforms are code, not configuration.

// Loader error codes.
const (
	ErrCodeNotFound   = "FORMATS_DIR_NOT_FOUND"
	ErrCodeScanError  = "FORMATS_SCAN_ERROR"
	ErrCodeNoFiles    = "NO_CUE_FILES"
	ErrCodeLoadFailed = "CUE_LOAD_FAILED"
	ErrCodeBadFormat  = "INVALID_FORMAT_DEF"
)

// LoadError represents an error that occurred while loading format
// definitions.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadDir loads every custom format declared by the CUE files in dir and
// registers them on top of the built-ins, returning the combined registry.
// All definition errors are collected before returning.
func LoadDir(dir string) (*Registry, []error) {
	reg := NewRegistry()
	descs, errs := loadDescriptors(dir)
	if len(errs) > 0 {
		return reg, errs
	}
	for _, d := range descs {
		if err := reg.Register(d); err != nil {
			errs = append(errs, &LoadError{Code: ErrCodeBadFormat, Message: err.Error()})
		}
	}
	return reg, errs
}

func loadDescriptors(dir string) ([]Descriptor, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("formats directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing formats directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	formatsVal := value.LookupPath(cue.ParsePath("format"))
	if !formatsVal.Exists() {
		return nil, []error{&LoadError{Code: ErrCodeBadFormat, Message: `no "format" declarations found`}}
	}

	iter, iterErr := formatsVal.Fields()
	if iterErr != nil {
		return nil, []error{&LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("iterating formats: %v", iterErr)}}
	}

	var descs []Descriptor
	var errs []error
	for iter.Next() {
		d, defErr := compileFormat(iter.Label(), iter.Value())
		if defErr != nil {
			errs = append(errs, defErr)
			continue
		}
		descs = append(descs, d)
	}
	return descs, errs
}

// compileFormat turns one format declaration into a uniform Descriptor.
func compileFormat(name string, v cue.Value) (Descriptor, error) {
	d := Descriptor{Name: name, Kind: KindUniform}

	divisorVal := v.LookupPath(cue.ParsePath("divisor"))
	if !divisorVal.Exists() {
		return Descriptor{}, &LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("format %q: missing divisor", name), Pos: v.Pos()}
	}
	divisor, err := divisorVal.Int64()
	if err != nil {
		return Descriptor{}, &LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("format %q: divisor: %v", name, err), Pos: divisorVal.Pos()}
	}
	d.Divisor = divisor

	offsetVal := v.LookupPath(cue.ParsePath("offset"))
	if !offsetVal.Exists() {
		return Descriptor{}, &LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("format %q: missing offset", name), Pos: v.Pos()}
	}
	offset, err := offsetVal.Int64()
	if err != nil {
		return Descriptor{}, &LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("format %q: offset: %v", name, err), Pos: offsetVal.Pos()}
	}
	d.OffsetSeconds = offset

	if unitVal := v.LookupPath(cue.ParsePath("unit")); unitVal.Exists() {
		unit, err := unitVal.String()
		if err != nil {
			return Descriptor{}, &LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("format %q: unit: %v", name, err), Pos: unitVal.Pos()}
		}
		d.Unit = unit
	}
	if descVal := v.LookupPath(cue.ParsePath("description")); descVal.Exists() {
		desc, err := descVal.String()
		if err != nil {
			return Descriptor{}, &LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("format %q: description: %v", name, err), Pos: descVal.Pos()}
		}
		d.Epoch = desc
	}

	return d, nil
}

func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
