package component

type HeroTag struct{}

var HeroTagComponent = NewComponent[HeroTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
