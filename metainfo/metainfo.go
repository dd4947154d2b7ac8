package metainfo

import (
	"net/url"
	"time"

	"github.com/wirebit/bencode/codec"
)

// Metainfo is the top-level structure of a .torrent file.
//
// Only Info is required; every other field is optional on the wire and left
// at its zero value when absent.
type Metainfo struct {
	Announce     *url.URL
	AnnounceList [][]string
	Comment      string
	CreatedBy    string
	CreationDate time.Time
	Info         Info
}

// UnmarshalBencode reconstructs the metainfo from its dictionary form.
func (m *Metainfo) UnmarshalBencode(d *codec.Decoder) error {
	k, err := d.Keyed()
	if err != nil {
		return err
	}

	if k.Has("announce") {
		if m.Announce, err = k.URL("announce"); err != nil {
			return err
		}
	}
	if k.Has("announce-list") {
		if m.AnnounceList, err = decodeAnnounceList(k); err != nil {
			return err
		}
	}
	if k.Has("comment") {
		if m.Comment, err = k.String("comment"); err != nil {
			return err
		}
	}
	if k.Has("created by") {
		if m.CreatedBy, err = k.String("created by"); err != nil {
			return err
		}
	}
	if k.Has("creation date") {
		sec, err := k.Int64("creation date")
		if err != nil {
			return err
		}
		m.CreationDate = time.Unix(sec, 0).UTC()
	}

	return k.Decode("info", &m.Info)
}

// decodeAnnounceList reads the BEP 12 tier structure: a list of tiers, each
// a list of tracker URLs.
func decodeAnnounceList(k *codec.Keyed) ([][]string, error) {
	tiers, err := k.Ordered("announce-list")
	if err != nil {
		return nil, err
	}

	out := make([][]string, 0, tiers.Len())
	for !tiers.AtEnd() {
		td, err := tiers.Next()
		if err != nil {
			return nil, err
		}
		tier, err := td.Ordered()
		if err != nil {
			return nil, err
		}
		urls := make([]string, 0, tier.Len())
		for !tier.AtEnd() {
			u, err := tier.String()
			if err != nil {
				return nil, err
			}
			urls = append(urls, u)
		}
		out = append(out, urls)
	}
	return out, nil
}

// Info is the info dictionary: the payload description shared by single-file
// and multi-file torrents.
type Info struct {
	Name        string
	PieceLength int64
	Pieces      []byte
	Private     bool

	// Exactly one of Length (single-file) and Files (multi-file) is set in
	// a well-formed torrent; the decoder does not enforce the exclusivity,
	// it reconstructs whichever keys are present.
	Length int64
	Files  []FileEntry
}

// UnmarshalBencode reconstructs the info dictionary.
func (i *Info) UnmarshalBencode(d *codec.Decoder) error {
	k, err := d.Keyed()
	if err != nil {
		return err
	}

	if i.Name, err = k.String("name"); err != nil {
		return err
	}
	if i.PieceLength, err = k.Int64("piece length"); err != nil {
		return err
	}
	// pieces is a concatenation of binary SHA-1 digests, never valid text.
	if i.Pieces, err = k.Bytes("pieces"); err != nil {
		return err
	}

	if k.Has("private") {
		flag, err := k.Int64("private")
		if err != nil {
			return err
		}
		i.Private = flag != 0
	}
	if k.Has("length") {
		if i.Length, err = k.Int64("length"); err != nil {
			return err
		}
	}
	if k.Has("files") {
		files, err := k.Ordered("files")
		if err != nil {
			return err
		}
		i.Files = make([]FileEntry, 0, files.Len())
		for !files.AtEnd() {
			var f FileEntry
			if err := files.Decode(&f); err != nil {
				return err
			}
			i.Files = append(i.Files, f)
		}
	}

	return nil
}

// NumPieces returns the number of 20-byte piece hashes.
func (i *Info) NumPieces() int {
	return len(i.Pieces) / 20
}

// PieceHash returns the SHA-1 digest of piece n, or nil if n is out of
// range.
func (i *Info) PieceHash(n int) []byte {
	if n < 0 || n >= i.NumPieces() {
		return nil
	}
	return i.Pieces[n*20 : (n+1)*20]
}

// TotalLength returns the payload size: Length for a single-file torrent,
// the sum of file lengths otherwise.
func (i *Info) TotalLength() int64 {
	if len(i.Files) == 0 {
		return i.Length
	}
	var total int64
	for _, f := range i.Files {
		total += f.Length
	}
	return total
}

// FileEntry is one entry of a multi-file torrent: a length and a path split
// into components.
type FileEntry struct {
	Length int64
	Path   []string
}

// UnmarshalBencode reconstructs a file entry.
func (f *FileEntry) UnmarshalBencode(d *codec.Decoder) error {
	k, err := d.Keyed()
	if err != nil {
		return err
	}

	if f.Length, err = k.Int64("length"); err != nil {
		return err
	}

	path, err := k.Ordered("path")
	if err != nil {
		return err
	}
	f.Path = make([]string, 0, path.Len())
	for !path.AtEnd() {
		part, err := path.String()
		if err != nil {
			return err
		}
		f.Path = append(f.Path, part)
	}
	return nil
}

// Load parses data as a complete .torrent file.
func Load(data []byte) (*Metainfo, error) {
	var m Metainfo
	if err := codec.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
