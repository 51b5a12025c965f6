package components

import "github.com/yohamta/donburi"

// BannerData is a singleton holding the centred level announcement.
type BannerData struct {
	Text    string
	Visible bool
	TaskID  int // deferred task that hides it, 0 = none
}

var Banner = donburi.NewComponentType[BannerData]()
