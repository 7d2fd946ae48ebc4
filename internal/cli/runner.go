/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/suparena/entityconv"
	"github.com/suparena/entityconv/converters"
	"github.com/suparena/entityconv/datastore"
	"github.com/suparena/entityconv/errors"
	v1 "github.com/suparena/entityconv/instancemodels/v1"
	v2 "github.com/suparena/entityconv/instancemodels/v2"
	"github.com/suparena/entityconv/registry"
)

// Runner executes one conversion.
type Runner struct {
	log   logrus.FieldLogger
	store datastore.StructStore
	out   io.Writer
}

// NewRunner creates a Runner writing JSON to out. store may be nil.
func NewRunner(log logrus.FieldLogger, store datastore.StructStore, out io.Writer) *Runner {
	return &Runner{log: log, store: store, out: out}
}

// Run loads the type definitions, converts the input and writes the result.
func (r *Runner) Run(ctx context.Context, opts *Options, stdin io.Reader) error {
	types, err := loadTypes(opts.TypeDefsPath)
	if err != nil {
		return err
	}

	in := stdin
	if opts.InputPath != "" {
		f, err := os.Open(opts.InputPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	conv := entityconv.New(types, entityconv.WithLogger(r.log))
	var result any
	if opts.Entity {
		result, err = convertEntity(conv, opts.Direction, in)
	} else {
		result, err = r.convertValue(ctx, conv, opts, in)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (r *Runner) convertValue(ctx context.Context, conv *entityconv.Converter, opts *Options, in io.Reader) (any, error) {
	var value any
	dec := json.NewDecoder(in)
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}

	var out any
	var err error
	if opts.Direction == converters.V1ToV2 {
		out, err = conv.ToV2(value, opts.TypeName)
	} else {
		out, err = conv.ToV1(value, opts.TypeName)
	}
	if err != nil {
		return nil, err
	}

	if opts.StoreKey != "" {
		if r.store == nil {
			return nil, errors.NewValidationError("store-key", "no store configured")
		}
		s, ok := out.(*v2.Struct)
		if !ok {
			return nil, errors.NewUnexpectedTypeError("*v2.Struct", out)
		}
		if err := r.store.Put(ctx, opts.StoreKey, s); err != nil {
			return nil, err
		}
		r.log.WithFields(logrus.Fields{"type": s.TypeName, "key": opts.StoreKey}).Info("stored converted struct")
	}
	return out, nil
}

func convertEntity(conv *entityconv.Converter, dir converters.Direction, in io.Reader) (any, error) {
	dec := json.NewDecoder(in)
	dec.UseNumber()
	if dir == converters.V1ToV2 {
		var ref v1.Referenceable
		if err := dec.Decode(&ref); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		return conv.EntityToV2(&ref)
	}
	var entity v2.Entity
	if err := dec.Decode(&entity); err != nil {
		return nil, fmt.Errorf("failed to decode entity: %w", err)
	}
	return conv.EntityToV1(&entity)
}

func loadTypes(path string) (*registry.TypeRegistry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open type definitions: %w", err)
	}
	defer f.Close()

	def, err := registry.LoadTypesDef(f)
	if err != nil {
		return nil, err
	}
	types := registry.NewTypeRegistry()
	if err := types.AddTypesDef(def); err != nil {
		return nil, err
	}
	return types, nil
}
