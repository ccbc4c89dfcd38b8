package page

import "github.com/ericfisherdev/portfolio/internal/domain/model"

// State is the mutable runtime state shared by the page controllers.
type State struct {
	Theme      model.Theme
	LastScroll float64
}
