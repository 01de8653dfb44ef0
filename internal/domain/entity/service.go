package entity

// Service описывает позицию каталога услуг.
type Service struct {
	ID           string
	Name         string
	Description  string
	Price        float64
	Timeline     string
	Includes     []string
	Customizable bool
	Category     string
}

// ServiceCategory группирует услуги каталога в порядке отображения.
type ServiceCategory struct {
	Name     string
	Services []Service
}
