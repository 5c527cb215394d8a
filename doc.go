// Package bguid converts 128-bit UUIDs to and from a compact, URL-safe,
// human-shareable text form called a "beautiful GUID".
//
// A beautiful GUID is four hyphen-separated groups, each a base-32 rendering
// of one 32-bit quarter of the UUID in the Crockford alphabet
// 0123456789ABCDEFGHJKMNPQRSTVWXYZ (I, L, O and U are excluded to avoid
// visually ambiguous and accidentally offensive output). The mapping is a
// bijection over the full 128-bit space, so encoding is lossless:
//
//	id, _ := bguid.Parse("550e8400-e29b-41d4-a716-446655440000")
//	short := id.Beautiful() // "1AGX100-3H9PGEM-2KHCH36-1AM8000"
//
//	back, err := bguid.ParseBeautiful(short)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(back) // "550e8400-e29b-41d4-a716-446655440000"
//
// Text-to-text conversions are available when no UUID value is needed:
//
//	short, err := bguid.ToBeautiful("550e8400-e29b-41d4-a716-446655440000")
//	long, err := bguid.FromBeautiful(short)
//
// Encoded groups use the shortest base-32 form (no leading zero digits), so
// group widths vary between 1 and 7 characters; decoding re-pads each group
// to a full 32 bits before reassembly. Groups longer than 7 characters, or
// decoding to a value above 32 bits, are rejected.
//
// New identifiers can be generated directly:
//
//	id := bguid.Must(bguid.NewRandom())
//	fmt.Println(id.Beautiful())
//
// Thread Safety:
//
// All conversions are pure functions over immutable values and are safe to
// call concurrently without synchronization. The only shared state is the
// read-only alphabet table.
//
// The UUID type implements encoding.TextMarshaler/Unmarshaler,
// encoding.BinaryMarshaler/Unmarshaler and the database/sql interfaces, so
// it can back a column type while the beautiful form is what users see.
package bguid
