package lesson

import "io"

// Binding is a named value in scope after a step runs, as shown in the
// walkthrough sidebar.
type Binding struct {
	Name  string
	Value string
}

// Step is one section of the lesson. Source is the snippet the step executes,
// Bindings are the values in scope once it has run.
type Step struct {
	Title    string
	Source   string
	Bindings []Binding
	Run      func(w io.Writer) error
}

func Steps() []Step {
	return []Step{
		{
			Title:  "Hello, world",
			Source: `fmt.Println("Hello, world!")`,
			Run:    Greeting,
		},
		{
			Title: "Bindings",
			Source: `const x = 5
y := 10
y += 5
fmt.Printf("x: %d, y: %d\n", x, y)`,
			Bindings: []Binding{
				{Name: "x", Value: "5"},
				{Name: "y", Value: "15"},
			},
			Run: Arithmetic,
		},
		{
			Title: "Branching",
			Source: `number := 7
if number < 10 {
	fmt.Println("Single digit")
} else {
	fmt.Println("Double digit")
}`,
			Bindings: []Binding{
				{Name: "number", Value: "7"},
			},
			Run: func(w io.Writer) error {
				return Branch(w, 7)
			},
		},
		{
			Title: "Counted loop",
			Source: `for i := 1; i <= 5; i++ {
	fmt.Printf("Number: %d\n", i)
}`,
			Bindings: []Binding{
				{Name: "i", Value: "1..5"},
			},
			Run: func(w io.Writer) error {
				return Loop(w, 1, 5)
			},
		},
		{
			Title: "Functions",
			Source: `greet("Rustacean")

func greet(name string) {
	fmt.Printf("Hello, %s!\n", name)
}`,
			Bindings: []Binding{
				{Name: "name", Value: `"Rustacean"`},
			},
			Run: func(w io.Writer) error {
				return Greet(w, DefaultName)
			},
		},
	}
}
