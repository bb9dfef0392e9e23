package state

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const xmlIndent = "   "

// xmlHeader matches what the simulator's schedule parser expects on line one.
const xmlHeader = `<?xml version="1.0" ?>` + "\n"

// leafElements are written without a closing tag.
var leafElements = []string{"Option", "Virtual", "Type", "Neighbor"}

type xmlSchedule struct {
	XMLName   xml.Name     `xml:"TSCHSchedule"`
	Slotframe xmlSlotframe `xml:"Slotframe"`
}

type xmlSlotframe struct {
	Size  int       `xml:"macSlotframeSize,attr"`
	Links []xmlLink `xml:"Link"`
}

type xmlLink struct {
	SlotOffset    int         `xml:"slotOffset,attr"`
	ChannelOffset int         `xml:"channelOffset,attr"`
	Option        xmlOption   `xml:"Option"`
	Virtual       xmlVirtual  `xml:"Virtual"`
	Type          xmlLinkType `xml:"Type"`
	Neighbor      xmlNeighbor `xml:"Neighbor"`
}

type xmlOption struct {
	Tx     bool `xml:"tx,attr"`
	Rx     bool `xml:"rx,attr"`
	Shared bool `xml:"shared,attr"`
	Auto   bool `xml:"auto,attr"`
}

type xmlVirtual struct {
	ID int `xml:"id,attr"`
}

type xmlLinkType struct {
	Normal          bool `xml:"normal,attr"`
	Advertising     bool `xml:"advertising,attr"`
	AdvertisingOnly bool `xml:"advertisingOnly,attr"`
}

type xmlNeighbor struct {
	Address Address `xml:"address,attr"`
}

// MarshalXML renders the schedule in the simulator's TSCHSchedule layout.
func MarshalXML(s *Schedule) ([]byte, error) {
	doc := xmlSchedule{
		Slotframe: xmlSlotframe{
			Size:  s.SlotframeSize,
			Links: make([]xmlLink, 0, len(s.Links)),
		},
	}
	for _, l := range s.Links {
		doc.Slotframe.Links = append(doc.Slotframe.Links, xmlLink{
			SlotOffset:    l.SlotOffset,
			ChannelOffset: l.ChannelOffset,
			Option:        xmlOption{Tx: l.Tx, Rx: l.Rx, Shared: l.Shared, Auto: l.Auto},
			Virtual:       xmlVirtual{ID: VirtualLinkID},
			Type:          xmlLinkType{Normal: true},
			Neighbor:      xmlNeighbor{Address: l.Neighbor},
		})
	}
	body, err := xml.MarshalIndent(doc, "", xmlIndent)
	if err != nil {
		return nil, err
	}
	// encoding/xml has no self-closing form
	for _, name := range leafElements {
		body = bytes.ReplaceAll(body, []byte("></"+name+">"), []byte("/>"))
	}
	out := append([]byte(xmlHeader), body...)
	return append(out, '\n'), nil
}

// UnmarshalXML parses a TSCHSchedule document. The XML carries no owner, so
// the caller supplies the node index and owner address.
func UnmarshalXML(data []byte, owner Address, nodeIndex int) (*Schedule, error) {
	var doc xmlSchedule
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing schedule: %w", ErrFormat, err)
	}
	if doc.Slotframe.Size < 1 {
		return nil, fmt.Errorf("%w: macSlotframeSize %d is not positive", ErrFormat, doc.Slotframe.Size)
	}
	s := NewSchedule(owner, nodeIndex, doc.Slotframe.Size)
	for _, x := range doc.Slotframe.Links {
		l := Link{
			SlotOffset:    x.SlotOffset,
			ChannelOffset: x.ChannelOffset,
			Tx:            x.Option.Tx,
			Rx:            x.Option.Rx,
			Shared:        x.Option.Shared,
			Auto:          x.Option.Auto,
			Neighbor:      x.Neighbor.Address,
		}
		l.Role = ClassifyRole(l)
		s.Add(l)
	}
	return s, nil
}
