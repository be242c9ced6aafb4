// Package festival loads the festival band dataset.
//
// The dataset is a static JSON document whose top-level value is an array
// of band objects with the fields name, description, category and gigs.
//
// # Loading
//
// Use the Loader to fetch and parse the dataset in one step:
//
//	loader := festival.NewLoader(settings.Dataset, client, func(e festival.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	catalog, err := loader.Load(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d bands\n", len(catalog.Bands))
//
// The source may be an http(s) URL or a local file path. It is fetched
// once; there is no retry.
//
// # Errors
//
// Every fetch or parse failure is returned as a *LoadError carrying the
// source and the underlying cause. A document whose top-level value is not
// an array wraps ErrNotArray.
package festival
