package catalog

// Carousel хранит текущий индекс карусели курсов.
// Навигация заворачивается по модулю длины в обе стороны; удаление
// текущего элемента, наоборот, прижимает индекс к новому последнему
// элементу без заворота.
type Carousel struct {
	Index  int
	Length int
}

// NewCarousel создает карусель для списка указанной длины
func NewCarousel(length int) Carousel {
	return Carousel{Length: length}
}

// Next переходит к следующему элементу с заворотом
func (c *Carousel) Next() {
	if c.Length == 0 {
		return
	}
	c.Index = (c.Index + 1) % c.Length
}

// Prev переходит к предыдущему элементу с заворотом
func (c *Carousel) Prev() {
	if c.Length == 0 {
		return
	}
	c.Index = (c.Index - 1 + c.Length) % c.Length
}

// Remove фиксирует удаление текущего элемента. Если удален последний
// элемент списка, индекс прижимается к новому последнему; если список
// опустел — сбрасывается в 0 (пустое состояние).
func (c *Carousel) Remove() {
	if c.Length == 0 {
		return
	}

	c.Length--
	if c.Length == 0 {
		c.Index = 0
		return
	}
	if c.Index >= c.Length {
		c.Index = c.Length - 1
	}
}

// Reset подменяет длину списка после полной перезагрузки данных.
// Индекс остается валидным: [0, length) либо 0 для пустого списка.
func (c *Carousel) Reset(length int) {
	c.Length = length
	if length == 0 {
		c.Index = 0
		return
	}
	if c.Index >= length {
		c.Index = length - 1
	}
}

// Empty сообщает, пуст ли список карусели
func (c *Carousel) Empty() bool {
	return c.Length == 0
}
