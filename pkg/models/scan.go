package models

// ScanInput is the capture payload of one scan: either a photo or a
// free-text description, never both and never neither. Modelling it as
// a closed variant keeps the illegal combinations out of the pipeline.
type ScanInput interface {
	isScanInput()
}

// ImageInput is a captured photo.
type ImageInput struct {
	Data []byte
	MIME string
}

// TextInput is a written description of the sighting.
type TextInput struct {
	Description string
}

func (ImageInput) isScanInput() {}
func (TextInput) isScanInput()  {}

// Extraction is what the vision model hands back for one scan: the
// structured species data plus a pre-rendered one-line card markup.
type Extraction struct {
	Metadata SpeciesMetadata
	HTMLCard string
}
