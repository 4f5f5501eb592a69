package lol

// Queue is the matchmaking queue, keyed upstream by gameQueueConfigId.
type Queue int

const (
	QueueUnknown Queue = iota
	QueueCustom
	QueueNormalBlindFives
	QueueBotFives
	QueueBotIntroFives
	QueueBotBeginnerFives
	QueueBotIntermediateFives
	QueueNormalBlindThrees
	QueueNormalDraftFives
	QueueDominionBlind
	QueueDominionDraft
	QueueBotDominion
	QueueRankedSolo
	QueueRankedPremadeThrees
	QueueRankedPremadeFives
	QueueRankedThrees
	QueueRankedFives
	QueueBotThrees
	QueueTeamBuilder
	QueueARAM
	QueueOneForAll
	QueueShowdownSolo
	QueueShowdownDuo
	QueueHexakillSummonersRift
	QueueURF
	QueueBotURF
	QueueDoomBots1
	QueueDoomBots2
	QueueDoomBots5
	QueueAscension
	QueueHexakillTwistedTreeline
	QueueButchersBridge
	QueuePoroKing
	QueueNemesisDraft
	QueueBlackMarket
	QueueNexusSiege
	QueueDynamic
	QueueRankedDynamic
	numQueues
)

var queuesByID = map[int]Queue{
	0:   QueueCustom,
	2:   QueueNormalBlindFives,
	4:   QueueRankedSolo,
	6:   QueueRankedPremadeFives,
	7:   QueueBotFives,
	8:   QueueNormalBlindThrees,
	9:   QueueRankedPremadeThrees,
	14:  QueueNormalDraftFives,
	16:  QueueDominionBlind,
	17:  QueueDominionDraft,
	25:  QueueBotDominion,
	31:  QueueBotIntroFives,
	32:  QueueBotBeginnerFives,
	33:  QueueBotIntermediateFives,
	41:  QueueRankedThrees,
	42:  QueueRankedFives,
	52:  QueueBotThrees,
	61:  QueueTeamBuilder,
	65:  QueueARAM,
	70:  QueueOneForAll,
	72:  QueueShowdownSolo,
	73:  QueueShowdownDuo,
	75:  QueueHexakillSummonersRift,
	76:  QueueURF,
	83:  QueueBotURF,
	91:  QueueDoomBots1,
	92:  QueueDoomBots2,
	93:  QueueDoomBots5,
	96:  QueueAscension,
	98:  QueueHexakillTwistedTreeline,
	100: QueueButchersBridge,
	300: QueuePoroKing,
	310: QueueNemesisDraft,
	313: QueueBlackMarket,
	315: QueueNexusSiege,
	400: QueueDynamic,
	410: QueueRankedDynamic,
}

var queueNames = [numQueues]string{
	QueueUnknown:                 "Unknown Queue",
	QueueCustom:                  "Custom",
	QueueNormalBlindFives:        "Normal Blind 5v5",
	QueueBotFives:                "Co-op vs AI 5v5",
	QueueBotIntroFives:           "Co-op vs AI Intro",
	QueueBotBeginnerFives:        "Co-op vs AI Beginner",
	QueueBotIntermediateFives:    "Co-op vs AI Intermediate",
	QueueNormalBlindThrees:       "Normal 3v3",
	QueueNormalDraftFives:        "Normal Draft 5v5",
	QueueDominionBlind:           "Dominion Blind",
	QueueDominionDraft:           "Dominion Draft",
	QueueBotDominion:             "Dominion Co-op vs AI",
	QueueRankedSolo:              "Ranked Solo",
	QueueRankedPremadeThrees:     "Ranked Premade 3v3",
	QueueRankedPremadeFives:      "Ranked Premade 5v5",
	QueueRankedThrees:            "Ranked Team 3v3",
	QueueRankedFives:             "Ranked Team 5v5",
	QueueBotThrees:               "Co-op vs AI 3v3",
	QueueTeamBuilder:             "Team Builder",
	QueueARAM:                    "ARAM",
	QueueOneForAll:               "One For All",
	QueueShowdownSolo:            "Showdown 1v1",
	QueueShowdownDuo:             "Showdown 2v2",
	QueueHexakillSummonersRift:   "Hexakill (Summoner's Rift)",
	QueueURF:                     "Ultra Rapid Fire",
	QueueBotURF:                  "Ultra Rapid Fire vs AI",
	QueueDoomBots1:               "Doom Bots Rank 1",
	QueueDoomBots2:               "Doom Bots Rank 2",
	QueueDoomBots5:               "Doom Bots Rank 5",
	QueueAscension:               "Ascension",
	QueueHexakillTwistedTreeline: "Hexakill (Twisted Treeline)",
	QueueButchersBridge:          "Butcher's Bridge",
	QueuePoroKing:                "Legend of the Poro King",
	QueueNemesisDraft:            "Nemesis Draft",
	QueueBlackMarket:             "Black Market Brawlers",
	QueueNexusSiege:              "Nexus Siege",
	QueueDynamic:                 "Normal Draft (Dynamic)",
	QueueRankedDynamic:           "Ranked Dynamic",
}

func QueueFromID(id int) Queue {
	if q, ok := queuesByID[id]; ok {
		return q
	}
	return QueueUnknown
}

func (q Queue) String() string {
	if q < 0 || q >= numQueues {
		return queueNames[QueueUnknown]
	}
	return queueNames[q]
}

func (q Queue) Ranked() bool {
	switch q {
	case QueueRankedSolo, QueueRankedThrees, QueueRankedFives, QueueRankedDynamic:
		return true
	}
	return false
}
