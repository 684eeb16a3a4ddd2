package songs

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is a raw DynamoDB record
type Item = map[string]types.AttributeValue

// Song is a record of the songs table
type Song struct {
	Artist     string `json:"artist"`
	SongTitle  string `json:"songTitle"`
	AlbumTitle string `json:"albumTitle"`
	Awards     int    `json:"awards"`
}

// Attribute names used by the songs table
const (
	AttrArtist     = "Artist"
	AttrSongTitle  = "SongTitle"
	AttrAlbumTitle = "AlbumTitle"
	AttrAwards     = "Awards"
)

// FromItem maps a record leniently: missing or mistyped attributes become zero values
func FromItem(item Item) Song {
	return Song{
		Artist:     stringAttr(item, AttrArtist),
		SongTitle:  stringAttr(item, AttrSongTitle),
		AlbumTitle: stringAttr(item, AttrAlbumTitle),
		Awards:     numberAttr(item, AttrAwards),
	}
}

// ToItem maps a song to a DynamoDB record
func (s Song) ToItem() Item {
	return Item{
		AttrArtist:     &types.AttributeValueMemberS{Value: s.Artist},
		AttrSongTitle:  &types.AttributeValueMemberS{Value: s.SongTitle},
		AttrAlbumTitle: &types.AttributeValueMemberS{Value: s.AlbumTitle},
		AttrAwards:     &types.AttributeValueMemberN{Value: strconv.Itoa(s.Awards)},
	}
}

func stringAttr(item Item, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func numberAttr(item Item, key string) int {
	v, ok := item[key].(*types.AttributeValueMemberN)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v.Value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
