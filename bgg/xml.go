// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bgg

// Wire shapes for the XML API v2. Only the attributes this service reads
// are mapped.

type collectionDoc struct {
	Items []collectionItem `xml:"item"`
}

type collectionItem struct {
	ObjectID int             `xml:"objectid,attr"`
	Subtype  string          `xml:"subtype,attr"`
	Name     string          `xml:"name"`
	Stats    collectionStats `xml:"stats"`
}

type collectionStats struct {
	MinPlayers  int              `xml:"minplayers,attr"`
	MaxPlayers  int              `xml:"maxplayers,attr"`
	MinPlaytime int              `xml:"minplaytime,attr"`
	MaxPlaytime int              `xml:"maxplaytime,attr"`
	Rating      collectionRating `xml:"rating"`
}

type collectionRating struct {
	// Value is the user's own rating, "N/A" when unrated.
	Value   string `xml:"value,attr"`
	Average struct {
		Value float64 `xml:"value,attr"`
	} `xml:"average"`
}

type thingDoc struct {
	Items []thingItem `xml:"item"`
}

type thingItem struct {
	ID         int         `xml:"id,attr"`
	Polls      []thingPoll `xml:"poll"`
	Statistics struct {
		Ratings struct {
			AverageWeight struct {
				Value float64 `xml:"value,attr"`
			} `xml:"averageweight"`
		} `xml:"ratings"`
	} `xml:"statistics"`
}

type thingPoll struct {
	Name    string            `xml:"name,attr"`
	Results []thingPollBucket `xml:"results"`
}

type thingPollBucket struct {
	NumPlayers string `xml:"numplayers,attr"`
	Result     []struct {
		Value    string `xml:"value,attr"`
		NumVotes int    `xml:"numvotes,attr"`
	} `xml:"result"`
}
