package components

import (
	"github.com/yohamta/donburi"

	"github.com/VectorPanic/rune-sdk-sub000/physics"
)

type ObjectData struct {
	*physics.Body
}

var Object = donburi.NewComponentType[ObjectData]()
