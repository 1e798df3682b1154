package entity

// PointMM — точка на плитке в миллиметрах. Ось Y направлена вверх
// (физическая система координат).
type PointMM struct {
	X float64 // координата X в миллиметрах
	Y float64 // координата Y в миллиметрах
}

// PointPX — точка в пикселях кадра. Ось Y направлена вниз
// (растровая система координат). Создаётся только преобразованием
// из миллиметров, вручную не задаётся.
type PointPX struct {
	X int // координата X в пикселях
	Y int // координата Y в пикселях
}
