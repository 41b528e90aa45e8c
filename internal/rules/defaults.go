package rules

import "fjacquet/orcamento/internal/models"

// defaultRules is the built-in rule set. Category order and keyword order
// decide which category wins when a title matches several keywords.
var defaultRules = models.KeywordRuleSet{
	{Name: models.CategoryFood, Keywords: []string{
		"restaurante", "lanchonete", "pizzaria", "hamburger", "mcdonalds", "burger king",
		"subway", "dominos", "ifood", "uber eats", "rappi", "delivery", "padaria",
		"açougue", "sorveteria", "cafeteria", "cafe", "bar", "pub", "boteco",
		"food", "eat", "pizza", "burger", "hot dog", "comida",
	}},
	{Name: models.CategoryGroceries, Keywords: []string{
		"supermercado", "mercado", "extra", "carrefour", "pao de acucar",
		"walmart", "big", "assai", "sam's club", "atacadao", "makro",
		"hipermercado", "supermarket", "grocery", "feira",
	}},
	{Name: models.CategoryTransport, Keywords: []string{
		"uber", "taxi", "99", "lyft", "metro", "onibus", "trem", "metrô",
		"bilhete unico", "vlt", "brt", "cptm", "combustivel", "gasolina",
		"etanol", "diesel", "posto", "ipiranga", "shell", "br", "petrobras",
		"transport", "gas station", "fuel", "parking", "estacionamento",
	}},
	{Name: models.CategoryHealth, Keywords: []string{
		"farmacia", "drogaria", "droga", "medico", "hospital", "clinica",
		"laboratorio", "exame", "consulta", "dentista", "oculista",
		"pharmacy", "medicine", "health", "dental", "vision", "saude",
	}},
	{Name: models.CategoryEducation, Keywords: []string{
		"escola", "faculdade", "universidade", "curso", "livro", "livraria",
		"material escolar", "papelaria", "education", "university", "school",
		"book", "study", "biblioteca",
	}},
	{Name: models.CategoryLeisure, Keywords: []string{
		"cinema", "teatro", "show", "ingresso", "netflix", "spotify",
		"amazon prime", "disney plus", "youtube", "streaming", "games",
		"steam", "playstation", "xbox", "nintendo", "entretenimento",
		"entertainment", "movie", "music", "game",
	}},
	{Name: models.CategoryServices, Keywords: []string{
		"banco", "tarifa", "anuidade", "taxa", "cartorio", "correios",
		"servico", "manutencao", "reparo", "service", "maintenance",
		"repair", "fee", "charge",
	}},
	{Name: models.CategoryHome, Keywords: []string{
		"casa", "lar", "construcao", "reforma", "mobilia", "decoracao",
		"eletrodomestico", "home", "house", "furniture", "appliance",
		"decoration", "cleaning", "limpeza", "supermercado material",
	}},
	{Name: models.CategoryClothing, Keywords: []string{
		"roupas", "roupa", "vestuario", "sapato", "tenis", "calcado",
		"clothing", "shoes", "fashion", "moda", "loja", "magazine",
		"zara", "h&m", "nike", "adidas",
	}},
	{Name: models.CategoryElectronics, Keywords: []string{
		"eletronicos", "smartphone", "celular", "computador", "notebook",
		"tablet", "tv", "electronics", "tech", "technology", "apple",
		"samsung", "lg", "sony",
	}},
	{Name: models.CategoryTravel, Keywords: []string{
		"hotel", "pousada", "passagem", "aviao", "voo", "viagem",
		"travel", "flight", "airline", "booking", "airbnb", "hospedagem",
	}},
}

// DefaultRules returns a copy of the built-in rule set.
func DefaultRules() models.KeywordRuleSet {
	return defaultRules.Clone()
}
