// Package entitymap turns the heterogeneous entity records served by the
// assessment dashboard API into stable, human-readable display values.
//
// Records from different topics share no schema: one carries albumTitle and
// artistName, another mythology and pantheon, a third property1 and
// property2. entitymap resolves every record against an ordered attribute
// registry to produce a primary value, a secondary value, a description and
// a labeled field inventory, always with a defined default.
//
// Example usage:
//
//	em, err := entitymap.New(entitymap.WithCampus("sydney"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	keypass, err := em.Login(ctx, "Sabin", "s8087644")
//	if err != nil {
//	    log.Fatal(dashboard.Describe(err))
//	}
//
//	items, err := em.Entities(ctx, keypass)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, item := range items {
//	    p1, p2 := item.Display.PropertyLines()
//	    fmt.Println(p1, p2, item.Display.Description)
//	}
package entitymap
