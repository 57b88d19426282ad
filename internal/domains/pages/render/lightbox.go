package render

// Lightbox models the gallery overlay's navigation over a fixed-size image
// list. Navigation wraps at both ends; with a single image, Next and Prev
// stay in place.
type Lightbox struct {
	Size  int  `json:"size"`
	Index int  `json:"index"`
	Open  bool `json:"open"`
}

// Keyboard keys the overlay responds to while open.
const (
	KeyEscape     = "Escape"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

func NewLightbox(size int) *Lightbox {
	return &Lightbox{Size: size}
}

// OpenAt opens the overlay on image i. Out-of-range indices are ignored.
func (l *Lightbox) OpenAt(i int) {
	if i < 0 || i >= l.Size {
		return
	}
	l.Index = i
	l.Open = true
}

func (l *Lightbox) Close() {
	l.Open = false
}

// Next advances cyclically: the last image wraps to the first.
func (l *Lightbox) Next() {
	if !l.Open || l.Size == 0 {
		return
	}
	l.Index = (l.Index + 1) % l.Size
}

// Prev steps back cyclically: the first image wraps to the last.
func (l *Lightbox) Prev() {
	if !l.Open || l.Size == 0 {
		return
	}
	l.Index = (l.Index - 1 + l.Size) % l.Size
}

// HandleKey applies one keyboard event. Keys other than Escape and the
// arrows are ignored, as is every key while the overlay is closed.
func (l *Lightbox) HandleKey(key string) {
	if !l.Open {
		return
	}
	switch key {
	case KeyEscape:
		l.Close()
	case KeyArrowRight:
		l.Next()
	case KeyArrowLeft:
		l.Prev()
	}
}
