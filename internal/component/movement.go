// component/movement.go
package component

import dmath "github.com/yohamta/donburi/features/math"

// Position — компонент позиции (в пикселях игрового поля)
type Position = dmath.Vec2
