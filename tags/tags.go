package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Enemy            = donburi.NewTag().SetName("Enemy")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
)
