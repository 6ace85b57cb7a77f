package feed

import (
	"strconv"

	"github.com/ytget/voidplay/internal/model"
)

// SponsoredCadence is the number of organic entries between sponsored ones
const SponsoredCadence = 10

// SponsoredTitle is the title every sponsored entry carries
const SponsoredTitle = "Featured Content - Discover More"

// Variant selects how a list is decorated before display
type Variant string

const (
	VariantFeed     Variant = "feed"
	VariantCategory Variant = "category"
	VariantSearch   Variant = "search"
)

// String returns the string representation of the variant
func (v Variant) String() string {
	return string(v)
}

// Entry is one grid cell
type Entry struct {
	Video     model.Video
	Sponsored bool
}

// InsertSponsored interleaves one sponsored entry after every cadence-th
// organic video. Only the feed variant carries sponsored entries. The pool
// supplies the content sponsored entries are copied from; an empty pool or a
// non-positive cadence disables insertion.
func InsertSponsored(videos, pool []model.Video, variant Variant, cadence int) []Entry {
	insert := variant == VariantFeed && len(pool) > 0 && cadence > 0

	size := len(videos)
	if insert {
		size += len(videos) / cadence
	}
	entries := make([]Entry, 0, size)

	for i, v := range videos {
		entries = append(entries, Entry{Video: v})
		if insert && (i+1)%cadence == 0 {
			entries = append(entries, Entry{Video: sponsoredFrom(pool, i), Sponsored: true})
		}
	}
	return entries
}

func sponsoredFrom(pool []model.Video, index int) model.Video {
	ad := pool[index%len(pool)]
	ad.ID = "ad-" + strconv.Itoa(index)
	ad.Title = SponsoredTitle
	ad.Badges = append([]model.Badge(nil), ad.Badges...)
	ad.Tags = append([]string(nil), ad.Tags...)
	return ad
}
