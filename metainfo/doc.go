// Package metainfo provides decodable types for BitTorrent metainfo
// (.torrent) files.
//
// The types mirror the metainfo dictionary layout and implement
// codec.Unmarshaler, so a torrent file decodes in one call:
//
//	data, _ := os.ReadFile("debian.torrent")
//	m, err := metainfo.Load(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Info.Name, m.Info.TotalLength())
//
// Optional fields (announce, comment, creation date, single-file length,
// multi-file list) stay at their zero values when absent; their absence is
// never an error. The pieces field is kept as raw bytes, since it is a
// concatenation of binary SHA-1 digests.
package metainfo
