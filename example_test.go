package mdpress_test

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/hmarchal/mdpress"
)

func Example() {
	conv, err := mdpress.NewConverter()
	if err != nil {
		log.Fatal(err)
	}

	result, err := conv.Convert(context.Background(), mdpress.Input{
		Markdown: "# Hello\n\nThis is **mdpress**.",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(bytes.HasPrefix(result.PDF, []byte("%PDF")))
	// Output: true
}

func ExampleNewConverter_options() {
	conv, err := mdpress.NewConverter(
		mdpress.WithPageSettings(&mdpress.PageSettings{
			Size:        mdpress.PageSizeA4,
			Orientation: mdpress.OrientationLandscape,
			Margin:      0.75,
		}),
		mdpress.WithBreakBefore(2),
	)
	if err != nil {
		log.Fatal(err)
	}

	_, err = conv.Convert(context.Background(), mdpress.Input{
		Markdown: "# Guide\n\n## First\n\ntext\n\n## Second\n\nmore text",
	})
	fmt.Println(err)
	// Output: <nil>
}

func ExampleStyleRegistry_Override() {
	conv, err := mdpress.NewConverter()
	if err != nil {
		log.Fatal(err)
	}

	err = conv.Styles().Override(mdpress.KindHeading1, mdpress.StyleOverride{
		Size:  mdpress.Float64(32),
		Color: mdpress.String("#003366"),
	})
	fmt.Println(err)
	// Output: <nil>
}
