package models

// Book reprezentuje książkę w katalogu bibliotecznym
type Book struct {
	ID       string `json:"id" firestore:"id"`
	ISBN     string `json:"isbn" firestore:"isbn"`
	Title    string `json:"title" firestore:"title"`
	Author   string `json:"author" firestore:"author"`
	Quantity int    `json:"quantity" firestore:"quantity"`
}

// IsAvailable sprawdza czy jest przynajmniej jeden egzemplarz do wypożyczenia.
// Quantity jest wartością katalogową utrzymywaną ręcznie - wypożyczenia jej nie zmieniają.
func (b *Book) IsAvailable() bool {
	return b.Quantity >= 1
}
