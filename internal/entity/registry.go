package entity

import "slices"

// Registry is an ordered set of unique phone numbers.
type Registry struct {
	numbers []PhoneNumber
}

func NewRegistry() *Registry {
	return &Registry{numbers: make([]PhoneNumber, 0)}
}

// Add appends the number unless it is already present.
func (r *Registry) Add(number PhoneNumber) Status {
	if r.Contains(number) {
		return StatusAlreadyExists
	}
	r.numbers = append(r.numbers, number)
	return StatusAdded
}

// Remove deletes the number keeping the order of the rest.
func (r *Registry) Remove(number PhoneNumber) Status {
	index := slices.Index(r.numbers, number)
	if index == -1 {
		return StatusNotFound
	}
	r.numbers = slices.Delete(r.numbers, index, index+1)
	return StatusRemoved
}

func (r *Registry) Contains(number PhoneNumber) bool {
	return slices.Contains(r.numbers, number)
}

// Numbers returns a copy of the registered numbers in insertion order.
func (r *Registry) Numbers() []PhoneNumber {
	return slices.Clone(r.numbers)
}

func (r *Registry) Len() int {
	return len(r.numbers)
}
