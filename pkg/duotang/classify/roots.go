package classify

import "github.com/OrbitCoCo/DuoTang/pkg/duotang/wordset"

// Root categories are identified by stable synset IDs, not surface names:
// "state.n.04" is the condition sense, not the territory sense, and the
// two must never be conflated. The sets below are fixed — they define what
// "concrete" means for this vocabulary and are not configuration.

// concreteRoots are ancestor categories indicating a physical, depictable
// object. A qualifying sense must reach at least one of these.
var concreteRoots = wordset.New(
	"physical_entity.n.01",
	"object.n.01",
	"artifact.n.01",
	"natural_object.n.01",
	"living_thing.n.01",
	"organism.n.01",
	"whole.n.02",
)

// abstractRoots are ancestor categories that disqualify a sense outright,
// even when a concrete root is also present on some path. People, roles,
// body parts, and groups are excluded alongside plain abstractions: none
// of them depict a guessable everyday object.
var abstractRoots = wordset.New(
	"abstraction.n.06",
	"psychological_feature.n.01",
	"attribute.n.02",
	"state.n.04",
	"event.n.01",
	"act.n.02",
	"group.n.01",
	"measure.n.02",
	"time_period.n.01",
	"relation.n.01",
	"communication.n.02",
	"content.n.05",
	"possession.n.02",
	"social_group.n.01",
	"body_part.n.01",
	"internal_organ.n.01",
	"person.n.01",
	"human.n.01",
	"worker.n.01",
	"adult.n.01",
	"juvenile.n.01",
	"national.n.01",
	"native.n.03",
	"resident.n.01",
	"inhabitant.n.01",
	"professional.n.01",
	"skilled_worker.n.01",
	"organization.n.01",
	"establishment.n.01",
)

// abstractMarkers are definition phrases that flag a sense as fundamentally
// about an abstraction even when its ancestor roots look concrete.
var abstractMarkers = []string{
	"concept of", "idea of", "theory of", "principle of",
	"state of being", "feeling of", "emotion of",
	"the act of", "the action of", "the process of",
	"the activity of", "the event of",
}

// technicalMarkers flag senses too narrow, medical, or scientific for an
// everyday guessing vocabulary. Matched as substrings of the definition,
// same as the marker phrases above.
var technicalMarkers = []string{
	"drug used", "medicine", "pharmaceutical", "medication",
	"chemical compound", "enzyme", "hormone", "protein",
	"antibiotic", "trademark", "trade name", "brand name",
	"physics", "chemistry", "particle", "subatomic",
	"molecular", "atom", "ion", "transmits", "duplicator",
	"device for", "apparatus", "instrument for measuring",
	"amphetamine", "anesthetic", "crystalline", "sedative",
	"stimulant", "analgesic", "ester", "alkaloid", "steroid",
	"vitamin", "fossil", "extinct",
}

// formalSuffixes participate in the narrow process-noun exclusion: a long
// word with one of these endings is dropped when its definition mentions
// reproduction, duplication, or replication.
var formalSuffixes = []string{
	"tion", "sion", "ism", "ity", "ness", "ment", "ence", "ance",
}

// reproductionMarkers trigger the formal-suffix exclusion.
var reproductionMarkers = []string{
	"reproduction", "duplication", "replication",
}
