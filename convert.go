package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Fatty911/nodes-subconverter/geolib"
	"github.com/Fatty911/nodes-subconverter/subconv"
)

func runConvert(ctx context.Context, annotator *geolib.Annotator) error {
	input := io.Reader(os.Stdin)

	if *subscriptionFile != nil {
		defer (*subscriptionFile).Close()

		input = *subscriptionFile
	}

	sub, err := subconv.Parse(input)
	if err != nil {
		return fmt.Errorf("cannot parse a subscription: %w", err)
	}

	annotated, err := annotator.AnnotateAll(ctx, sub.Nodes())
	if err != nil {
		return fmt.Errorf("cannot annotate nodes: %w", err)
	}

	if err := sub.Apply(annotated); err != nil {
		return fmt.Errorf("cannot apply annotated nodes: %w", err)
	}

	output := io.Writer(os.Stdout)

	if *outputPath != "" {
		fp, err := os.Create(*outputPath)
		if err != nil {
			return fmt.Errorf("cannot create an output file: %w", err)
		}

		defer fp.Close()

		output = fp
	}

	if err := sub.Encode(output); err != nil {
		return fmt.Errorf("cannot encode a subscription: %w", err)
	}

	return nil
}
