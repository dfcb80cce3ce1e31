/*
Package sequence implements null-compressing sparse sequences and tables of
sparse sequences walked in lock-step.

A Sequence stores only its present values. Each stored value, a Slot, also
counts the absent positions that immediately follow it, and absent positions
before the first Slot are counted by a leading gap. No placeholder is ever
stored for an absent position:

	s := sequence.NewSequence[int]()
	s.PushAbsent() // leading gap: 1
	s.Push(5)      // slot {5, run 0}
	s.PushAbsent() // slot {5, run 1}
	s.PushAbsent() // slot {5, run 2}
	s.Push(7)      // slot {7, run 0}

Positions are only reachable through forward iterators. An iterator yields a
pointer to the stored value when it is exactly on a Slot and nil otherwise.
Erase removes one logical position and returns an iterator on its new
occupant; every other iterator of the sequence is invalidated.

A Table groups several sequences, possibly of different element types, that
always share the same length. Pushing to a table appends exactly one value or
absence to each column, and iterating a table advances every column by one
position per step. Table2 and Table3 are typed front ends whose Push arity is
checked by the compiler.

Sequences and tables are not safe for concurrent use.
*/
package sequence
