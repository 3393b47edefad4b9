package testutils

// BestiaryDoc is a small bestiary in the campaign's authoring style:
// tier banner, emphasized monster headers with level ranges, per-level
// stat bullets, and a crowned boss with labeled phases.
const BestiaryDoc = `# 🐗 BESTIAIRE PALIER 1

## 🐰 **Lapin Cornu** (1-5)

**Niveau 1 :**
- **HP :** 10
- **MP :** 0
- **STR :** 3
- **AGI :** 4
- **INT :** 1
- **DEX :** 2
- **VIT :** 2
- **Attaque de base :** 1d4
- **Drop :** Corne de lapin, Fourrure
- **Zone :** Plaine des débuts

**Niveau 5 :**
- **HP :** 30
- **MP :** 0
- **STR :** 9
- **AGI :** 10
- **INT :** 2
- **DEX :** 6
- **VIT :** 6
- **Attaque de base :** 1d6
- **Drop :** Corne polie

---

## 🐺 **Loup Sylvestre** (3-8)

**Niveau 3 :**
- **HP :** 24
- **MP :** 5
- **STR :** 6
- **AGI :** 8
- **INT :** 2
- **DEX :** 5
- **VIT :** 4
- **Zone :** Forêt de l'ouest

---

### **Reine Lapine** (10) 👑

**Phase 1 :**
- **HP :** 200
- **MP :** 40
- **STR :** 20
- **AGI :** 15
- **INT :** 8
- **DEX :** 12
- **VIT :** 18
- **Compétences :**
- Charge cornue
- Appel de la garenne

**Phase 2 :**
- **HP :** 120
- **STR :** 26
- **Compétences :**
- Frénésie
`

// SkillsDoc is a small skill tier document: category headings group
// the emphasized skill headings that follow.
const SkillsDoc = `# ✨ SKILLS PALIER 1

## 🔮 Skills Magiques

### **Boule de Feu**
- **Description :** Projette une boule de feu sur une cible.
- **Coût MP :** 5
- **Condition :** INT 10
- **Incantation :** Flamme, viens à moi

### **Soin Mineur**
- **Description :** Rend des HP à une cible au contact.
- **Coût :** 8

## ⚔️ Skills Martiaux

### **Frappe Puissante**
- **Description :** Une attaque chargée au corps à corps.
- **Coût PM :** 3
- **Condition :** STR 8
- **Portée :** Contact
`
