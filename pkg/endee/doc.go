// Package endee provides a client for the Endee vector database API.
//
// Clients and index handles are safe for concurrent use from multiple
// goroutines.
//
// Basic usage:
//
//	client, err := endee.NewEndee(endee.Config{APIKey: "your-api-key"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	index := client.Index("articles")
//	resp, err := index.Query(ctx, endee.NewQueryOptions(
//	    endee.WithVector(embedding),
//	    endee.WithTopK(10),
//	    endee.WithFilter(endee.Filter{
//	        endee.Eq("category", "tech"),
//	        endee.Range("score", 80, 100),
//	    }),
//	))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, match := range resp.Matches {
//	    fmt.Println(match.ID, match.Similarity)
//	}
package endee
