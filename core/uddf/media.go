package uddf

// MediaData is the <mediadata> section. Its images, audio and video
// entries are referenceable.
type MediaData struct {
	Images []Image `xml:"image,omitempty"`
	Audio  []Media `xml:"audio,omitempty"`
	Videos []Media `xml:"video,omitempty"`
}

// Media is an external media file.
type Media struct {
	ID         *string `xml:"id,attr,omitempty"`
	ObjectName string  `xml:"objectname,omitempty"`
	Title      string  `xml:"title,omitempty"`
}

// Image is a picture with optional geometry.
type Image struct {
	Media
	Format string `xml:"format,attr,omitempty"`
	Height *int   `xml:"height,attr,omitempty"`
	Width  *int   `xml:"width,attr,omitempty"`
}
