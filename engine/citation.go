package engine

import (
	"fmt"

	"chess-arbiter/taxonomy"
)

func article(no, en, textNo, textEn string) Citation {
	return Citation{
		SectionNo: "Artikkel " + no,
		SectionEn: "Article " + en,
		TextNo:    textNo,
		TextEn:    textEn,
	}
}

// Occupied destination squares are covered by 3.1, which is not a rule type
// of its own.
var ownPieceCitation = article("3.1", "3.1",
	"Det er ikke tillatt å flytte en brikke til et felt som er okkupert av en brikke av samme farge.",
	"It is not permitted to move a piece to a square occupied by a piece of the same colour.")

var exposeCitation = article("3.9.2", "3.9.2",
	"Ingen brikke kan flyttes slik at egen konge blir stående i sjakk.",
	"No piece can be moved that will either expose the king of the same colour to check or leave that king in check.")

var flyOverCitation = article("3.5", "3.5",
	"Dronningen, tårnet og løperen kan ikke flytte over noen mellomliggende brikker.",
	"When making these moves, the bishop, rook or queen may not move over any intervening pieces.")

// cite returns the article that governs rule id.
func cite(id taxonomy.RuleID) Citation {
	switch id {
	case taxonomy.RuleCastling:
		return article("3.8.2", "3.8.2",
			"Rokade er et trekk med kongen og et av tårnene av samme farge langs spillerens første rad. Rokade er ikke tillatt hvis kongen eller tårnet allerede er flyttet, hvis kongen står i sjakk, hvis et felt mellom dem er besatt, eller hvis kongen må passere eller ende på et felt som angripes.",
			"Castling is a move of the king and either rook of the same colour along the player's first rank. It is not permitted if the king or that rook has already moved, if the king is in check, if any square between them is occupied, or if the king would pass over or land on an attacked square.")
	case taxonomy.RuleEnPassant:
		return article("3.7.3.2", "3.7.3.2",
			"En bonde som angriper et felt som en motstanders bonde har passert med et dobbeltrinn, kan slå denne bonden som om den bare hadde flyttet ett felt. Slaget kan bare gjøres i trekket umiddelbart etter.",
			"A pawn occupying a square on the same rank as and on an adjacent file to an opponent's pawn which has just advanced two squares may capture it as though it had moved only one square. This capture is only legal on the move following this advance.")
	case taxonomy.RulePromotion:
		return article("3.7.3.3", "3.7.3.3",
			"Når en bonde når raden lengst fra utgangsstillingen, må den byttes ut med en ny dronning, et tårn, en løper eller en springer av samme farge som en del av samme trekk.",
			"When a player, having the move, plays a pawn to the rank furthest from its starting position, they must exchange that pawn as part of the same move for a new queen, rook, bishop or knight of the same colour.")
	case taxonomy.RulePawnDoublePush:
		return article("3.7.2", "3.7.2",
			"I sitt første trekk kan bonden flytte ett eller to felt fremover langs samme linje, forutsatt at begge feltene er ledige.",
			"On its first move the pawn may either move forward one square or advance two squares along the same file, provided that both squares are unoccupied.")
	case taxonomy.RulePawnCapture:
		return article("3.7.3.1", "3.7.3.1",
			"Bonden slår ved å flytte til et felt diagonalt foran seg på en nabolinje, okkupert av en motstanders brikke.",
			"The pawn may move to a square occupied by an opponent's piece diagonally in front of it on an adjacent file, capturing that piece.")
	case taxonomy.RulePawnAdvance:
		return article("3.7.1", "3.7.1",
			"Bonden kan flytte til det ledige feltet rett foran seg på samme linje.",
			"The pawn may move forward to the square immediately in front of it on the same file, provided that this square is unoccupied.")
	case taxonomy.RuleKnightMove:
		return article("3.6", "3.6",
			"Springeren kan flytte til et av de nærmeste feltene fra det den står på, men ikke på samme linje, rad eller diagonal.",
			"The knight may move to one of the squares nearest to that on which it stands but not on the same rank, file or diagonal.")
	case taxonomy.RuleKingMove:
		return article("3.8.1", "3.8.1",
			"Kongen kan flytte til et hvilket som helst nabofelt som ikke angripes av en eller flere av motstanderens brikker.",
			"The king may move to any adjoining square not attacked by one or more of the opponent's pieces.")
	case taxonomy.RuleBishopMove:
		return article("3.2", "3.2",
			"Løperen kan flytte til et hvilket som helst felt langs en diagonal den står på.",
			"The bishop may move to any square along a diagonal on which it stands.")
	case taxonomy.RuleRookMove:
		return article("3.3", "3.3",
			"Tårnet kan flytte til et hvilket som helst felt langs linjen eller raden det står på.",
			"The rook may move to any square along the file or the rank on which it stands.")
	case taxonomy.RuleQueenMove:
		return article("3.4", "3.4",
			"Dronningen kan flytte til et hvilket som helst felt langs linjen, raden eller en diagonal den står på.",
			"The queen may move to any square along the file, the rank or a diagonal on which it stands.")
	case taxonomy.RuleTurnOrder:
		return article("1.2", "1.2",
			"Spillerne gjør sine trekk vekselvis. Den som har de hvite brikkene begynner.",
			"The player with the light-coloured pieces (White) makes the first move, then the players move alternately.")
	case taxonomy.RuleCheck:
		return article("3.9.1", "3.9.1",
			"Kongen står i sjakk når den angripes av en eller flere av motstanderens brikker.",
			"The king is said to be 'in check' if it is attacked by one or more of the opponent's pieces.")
	case taxonomy.RuleCheckmate:
		return article("5.1.1", "5.1.1",
			"Partiet er vunnet av spilleren som har satt motstanderens konge matt.",
			"The game is won by the player who has checkmated their opponent's king.")
	case taxonomy.RuleStalemate:
		return article("5.2.1", "5.2.1",
			"Partiet er remis når spilleren som skal trekke ikke har noe lovlig trekk og kongen ikke står i sjakk.",
			"The game is drawn when the player to move has no legal move and their king is not in check.")
	case taxonomy.RuleDeadPosition:
		return article("5.2.2", "5.2.2",
			"Partiet er remis når en stilling er oppstått der ingen av spillerne kan sette matt med noen rekke lovlige trekk.",
			"The game is drawn when a position has arisen in which neither player can checkmate the opponent's king with any series of legal moves.")
	case taxonomy.RuleThreefold:
		return article("9.2", "9.2",
			"Spilleren som er i trekket kan kreve remis når samme stilling har oppstått minst tre ganger.",
			"The game is drawn, upon a correct claim by a player having the move, when the same position has appeared at least three times.")
	case taxonomy.RuleFivefold:
		return article("9.6.1", "9.6.1",
			"Partiet er remis når samme stilling har oppstått minst fem ganger.",
			"The game is drawn if the same position has appeared at least five times.")
	case taxonomy.RuleFiftyMove:
		return article("9.3", "9.3",
			"Spilleren som er i trekket kan kreve remis når de siste 50 trekkene av hver spiller er gjort uten bondetrekk eller slag.",
			"The game is drawn, upon a correct claim by a player having the move, if the last 50 moves by each player have been completed without the movement of any pawn and without any capture.")
	case taxonomy.RuleSeventyFiveMove:
		return article("9.6.2", "9.6.2",
			"Partiet er remis når de siste 75 trekkene av hver spiller er gjort uten bondetrekk eller slag, med mindre det siste trekket ga matt.",
			"The game is drawn if any series of at least 75 moves have been made by each player without the movement of any pawn and without any capture, unless the last move resulted in checkmate.")
	case taxonomy.RuleFlagFall:
		return article("6.9", "6.9",
			"En spiller som ikke har fullført sine trekk innen tiden taper, med mindre motstanderen ikke kan sette matt med noen rekke lovlige trekk; da er partiet remis.",
			"If a player does not complete the prescribed number of moves in the allotted time, the game is lost by that player, unless the position is such that the opponent cannot checkmate by any possible series of legal moves, in which case the game is drawn.")
	default:
		panic(fmt.Sprintf("engine: no citation for rule %d", uint8(id)))
	}
}
