package reaction

// ToTuple1 interprets every effect into one command batch
// Batches are concatenated in effect order
func ToTuple1[S, E, C any](interpret func(E) []C, r Reaction[S, E]) (S, []C) {
	var out []C
	for _, e := range r.effects {
		out = append(out, interpret(e)...)
	}
	return r.state, out
}

// ToTuple2 interprets every effect into two command categories
// Each category is concatenated independently, preserving effect order
func ToTuple2[S, E, C1, C2 any](interpret func(E) ([]C1, []C2), r Reaction[S, E]) (S, []C1, []C2) {
	var out1 []C1
	var out2 []C2
	for _, e := range r.effects {
		c1, c2 := interpret(e)
		out1 = append(out1, c1...)
		out2 = append(out2, c2...)
	}
	return r.state, out1, out2
}

// ToTuple3 interprets every effect into three command categories
func ToTuple3[S, E, C1, C2, C3 any](interpret func(E) ([]C1, []C2, []C3), r Reaction[S, E]) (S, []C1, []C2, []C3) {
	var out1 []C1
	var out2 []C2
	var out3 []C3
	for _, e := range r.effects {
		c1, c2, c3 := interpret(e)
		out1 = append(out1, c1...)
		out2 = append(out2, c2...)
		out3 = append(out3, c3...)
	}
	return r.state, out1, out2, out3
}
