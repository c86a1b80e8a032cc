package server

// wordCategories is the category enum exposed to callers, "all" excluded.
var wordCategories = []string{
	"agua", "veiculos", "casa", "animais", "natureza", "tecnologia",
	"corpo", "comida", "espaco", "livros", "musica", "esportes",
}

func validWordCategory(category string) bool {
	if category == categoryAll {
		return true
	}
	for _, known := range wordCategories {
		if known == category {
			return true
		}
	}
	return false
}

// fallbackWordPairs serves a process running without a database, in place of
// the word_pairs table. Pairs are related words, not synonyms.
func fallbackWordPairs() []WordPair {
	pairs := []WordPair{
		{CrewmateWord: "OCEANO", ImpostorWord: "TUBARÃO", Category: "agua"},
		{CrewmateWord: "MAR", ImpostorWord: "PEIXE", Category: "agua"},
		{CrewmateWord: "PRAIA", ImpostorWord: "CONCHA", Category: "agua"},
		{CrewmateWord: "CHUVA", ImpostorWord: "GUARDA-CHUVA", Category: "agua"},
		{CrewmateWord: "PORTO", ImpostorWord: "BARCO", Category: "agua"},

		{CrewmateWord: "CARRO", ImpostorWord: "RODA", Category: "veiculos"},
		{CrewmateWord: "BICICLETA", ImpostorWord: "PEDAL", Category: "veiculos"},
		{CrewmateWord: "AVIÃO", ImpostorWord: "ASA", Category: "veiculos"},
		{CrewmateWord: "TREM", ImpostorWord: "TRILHO", Category: "veiculos"},
		{CrewmateWord: "NAVIO", ImpostorWord: "ÂNCORA", Category: "veiculos"},

		{CrewmateWord: "CASA", ImpostorWord: "PORTA", Category: "casa"},
		{CrewmateWord: "COZINHA", ImpostorWord: "FOGÃO", Category: "casa"},
		{CrewmateWord: "QUARTO", ImpostorWord: "CAMA", Category: "casa"},
		{CrewmateWord: "ESCADA", ImpostorWord: "DEGRAU", Category: "casa"},
		{CrewmateWord: "TELHADO", ImpostorWord: "TELHA", Category: "casa"},

		{CrewmateWord: "CACHORRO", ImpostorWord: "OSSO", Category: "animais"},
		{CrewmateWord: "GATO", ImpostorWord: "RATO", Category: "animais"},
		{CrewmateWord: "MACACO", ImpostorWord: "BANANA", Category: "animais"},
		{CrewmateWord: "GALINHA", ImpostorWord: "OVO", Category: "animais"},
		{CrewmateWord: "TARTARUGA", ImpostorWord: "CASCO", Category: "animais"},

		{CrewmateWord: "ÁRVORE", ImpostorWord: "FOLHA", Category: "natureza"},
		{CrewmateWord: "FLOR", ImpostorWord: "PÉTALA", Category: "natureza"},
		{CrewmateWord: "MONTANHA", ImpostorWord: "NEVE", Category: "natureza"},
		{CrewmateWord: "VULCÃO", ImpostorWord: "LAVA", Category: "natureza"},
		{CrewmateWord: "RAIO", ImpostorWord: "TROVÃO", Category: "natureza"},

		{CrewmateWord: "COMPUTADOR", ImpostorWord: "TECLADO", Category: "tecnologia"},
		{CrewmateWord: "CELULAR", ImpostorWord: "TELA", Category: "tecnologia"},
		{CrewmateWord: "CÂMERA", ImpostorWord: "LENTE", Category: "tecnologia"},
		{CrewmateWord: "IMPRESSORA", ImpostorWord: "PAPEL", Category: "tecnologia"},
		{CrewmateWord: "DRONE", ImpostorWord: "HÉLICE", Category: "tecnologia"},

		{CrewmateWord: "CABEÇA", ImpostorWord: "CABELO", Category: "corpo"},
		{CrewmateWord: "MÃO", ImpostorWord: "DEDO", Category: "corpo"},
		{CrewmateWord: "BOCA", ImpostorWord: "DENTE", Category: "corpo"},
		{CrewmateWord: "OSSO", ImpostorWord: "ESQUELETO", Category: "corpo"},
		{CrewmateWord: "CÉREBRO", ImpostorWord: "NEURÔNIO", Category: "corpo"},

		{CrewmateWord: "PÃO", ImpostorWord: "FARINHA", Category: "comida"},
		{CrewmateWord: "PIZZA", ImpostorWord: "FATIA", Category: "comida"},
		{CrewmateWord: "BOLO", ImpostorWord: "VELA", Category: "comida"},
		{CrewmateWord: "CAFÉ", ImpostorWord: "XÍCARA", Category: "comida"},
		{CrewmateWord: "CHOCOLATE", ImpostorWord: "BARRA", Category: "comida"},

		{CrewmateWord: "SOL", ImpostorWord: "LUZ", Category: "espaco"},
		{CrewmateWord: "LUA", ImpostorWord: "CRATERA", Category: "espaco"},
		{CrewmateWord: "PLANETA", ImpostorWord: "ÓRBITA", Category: "espaco"},
		{CrewmateWord: "COMETA", ImpostorWord: "CAUDA", Category: "espaco"},
		{CrewmateWord: "SATURNO", ImpostorWord: "ANEL", Category: "espaco"},

		{CrewmateWord: "LIVRO", ImpostorWord: "PÁGINA", Category: "livros"},
		{CrewmateWord: "CANETA", ImpostorWord: "TINTA", Category: "livros"},
		{CrewmateWord: "LÁPIS", ImpostorWord: "GRAFITE", Category: "livros"},
		{CrewmateWord: "BIBLIOTECA", ImpostorWord: "LIVRO", Category: "livros"},
		{CrewmateWord: "JORNAL", ImpostorWord: "NOTÍCIA", Category: "livros"},

		{CrewmateWord: "MÚSICA", ImpostorWord: "NOTA", Category: "musica"},
		{CrewmateWord: "VIOLÃO", ImpostorWord: "CORDA", Category: "musica"},
		{CrewmateWord: "PIANO", ImpostorWord: "TECLA", Category: "musica"},
		{CrewmateWord: "VIOLINO", ImpostorWord: "ARCO", Category: "musica"},
		{CrewmateWord: "ORQUESTRA", ImpostorWord: "MAESTRO", Category: "musica"},

		{CrewmateWord: "FUTEBOL", ImpostorWord: "BOLA", Category: "esportes"},
		{CrewmateWord: "NATAÇÃO", ImpostorWord: "PISCINA", Category: "esportes"},
		{CrewmateWord: "TÊNIS", ImpostorWord: "RAQUETE", Category: "esportes"},
		{CrewmateWord: "SURFE", ImpostorWord: "PRANCHA", Category: "esportes"},
		{CrewmateWord: "GINÁSTICA", ImpostorWord: "APARELHO", Category: "esportes"},
	}
	for i := range pairs {
		pairs[i].ID = uint(i + 1)
	}
	return pairs
}
